package buffer

// Errors
var (
	ErrOutOfData       = &BufferError{"out of data"}
	ErrMalformedVarint = &BufferError{"malformed varint"}
)

// BufferError represents a failure to read from a ReadBuffer
type BufferError struct {
	Message string
}

func (e *BufferError) Error() string {
	return e.Message
}

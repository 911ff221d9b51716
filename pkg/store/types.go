package store

// Config holds configuration for the pebble-backed store
type Config struct {
	Dir      string // Directory for pebble files
	InMemory bool   // Keep everything in memory, ignoring Dir
	Sync     bool   // fsync every write
}

// Errors
var (
	ErrKeyNotFound = &KVError{"key not found"}
	ErrInvalidKey  = &KVError{"invalid key"}
	ErrClosed      = &KVError{"store is closed"}
)

// KVError represents a key-value store error
type KVError struct {
	Message string
}

func (e *KVError) Error() string {
	return e.Message
}

package codec

import (
	"errors"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
	"github.com/rayokota/hentitydb-sub001/pkg/metrics"
)

// Errors
var (
	ErrOutOfData          = buffer.ErrOutOfData
	ErrMalformedVarint    = buffer.ErrMalformedVarint
	ErrUnsupportedVersion = &CodecError{"unsupported version"}
	ErrUnknownCodecType   = &CodecError{"unknown codec type"}
	ErrUnknownType        = &CodecError{"unknown type"}
	ErrChecksum           = &CodecError{"checksum mismatch"}
	ErrInvalidValue       = &CodecError{"invalid value"}
)

// CodecError represents a codec failure
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}

// errorKind names the sentinel behind err for metrics labels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrOutOfData):
		return "out_of_data"
	case errors.Is(err, ErrMalformedVarint):
		return "malformed_varint"
	case errors.Is(err, ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, ErrUnknownCodecType):
		return "unknown_codec_type"
	case errors.Is(err, ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, ErrChecksum):
		return "checksum"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}

func recordFailure(operation string, err error) {
	metrics.CodecFailures.WithLabelValues(operation, errorKind(err)).Inc()
}

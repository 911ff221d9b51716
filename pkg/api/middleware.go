package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/store"
	"github.com/rayokota/hentitydb-sub001/pkg/textcodec"
)

const apiKeyHeader = "X-API-Key"

// requireAPIKey rejects requests whose X-API-Key header does not match key
func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(apiKeyHeader)
			switch {
			case got == "":
				sendError(w, "Missing "+apiKeyHeader+" header", http.StatusUnauthorized)
			case subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1:
				sendError(w, "Invalid API key", http.StatusUnauthorized)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// sendSuccess writes data in a success envelope
func sendSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// sendError writes message in an error envelope
func sendError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, APIResponse{Success: false, Error: message})
}

// sendCodecError writes err in an error envelope with the status mapped
// from its codec or store sentinel, or fallback when none matches.
func sendCodecError(w http.ResponseWriter, err error, fallback int) {
	sendError(w, err.Error(), statusFor(err, fallback))
}

// statusFor maps codec and store sentinels to HTTP status codes
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, codec.ErrUnknownCodecType),
		errors.Is(err, store.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, textcodec.ErrNoTextForm):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, codec.ErrOutOfData),
		errors.Is(err, codec.ErrMalformedVarint),
		errors.Is(err, codec.ErrChecksum),
		errors.Is(err, codec.ErrInvalidValue),
		errors.Is(err, codec.ErrUnsupportedVersion),
		errors.Is(err, codec.ErrUnknownType):
		return http.StatusUnprocessableEntity
	default:
		return fallback
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port        int
	APIKey      string // empty disables authentication
	SaltBuckets int    // bucket count applied when a request sets salt=true
}

// CodecInfo describes one registry entry
type CodecInfo struct {
	ID   string `json:"id"`
	Text bool   `json:"text"`
}

// EncodeRequest is the body of POST /encode/{codec}
type EncodeRequest struct {
	Value string `json:"value"`
}

// EncodeResponse carries encoded bytes as hex
type EncodeResponse struct {
	Codec string `json:"codec"`
	Hex   string `json:"hex"`
}

// DecodeRequest is the body of POST /decode/{codec}
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// DecodeResponse carries a decoded value in text form
type DecodeResponse struct {
	Codec string `json:"codec"`
	Value string `json:"value"`
}

// PutRequest is the body of PUT /tables/{table}/keys/{key}
type PutRequest struct {
	Value string `json:"value"`
}

// Row is one table entry in text form
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Hex   string `json:"hex,omitempty"`
}

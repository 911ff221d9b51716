package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/store"
	"github.com/rayokota/hentitydb-sub001/pkg/textcodec"
)

const defaultScanLimit = 100

// Server holds the API server state
type Server struct {
	db     *store.DB
	config ServerConfig
}

// NewServer creates a new API server. db may be nil, in which case the
// table routes answer 503.
func NewServer(db *store.DB, config ServerConfig) *Server {
	return &Server{
		db:     db,
		config: config,
	}
}

func (s *Server) options(r *http.Request) textcodec.Options {
	q := r.URL.Query()
	flag := func(name string) bool {
		b, _ := strconv.ParseBool(q.Get(name))
		return b
	}
	return textcodec.Options{
		Salt:     flag("salt"),
		Buckets:  s.config.SaltBuckets,
		Compress: flag("compress"),
		Checksum: flag("checksum"),
	}
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCodecs lists the registry
func (s *Server) handleCodecs(w http.ResponseWriter, r *http.Request) {
	ids := codec.Registered()
	infos := make([]CodecInfo, len(ids))
	for i, id := range ids {
		infos[i] = CodecInfo{ID: id, Text: textcodec.Supported(id)}
	}
	sendSuccess(w, infos)
}

// handleEncode encodes a text value with the codec named in the path.
// Query flags salt, compress and checksum wrap the codec.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "codec")
	adapter, err := textcodec.For(id, s.options(r))
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	p, err := adapter.Encode(req.Value)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	sendSuccess(w, EncodeResponse{Codec: id, Hex: hex.EncodeToString(p)})
}

// handleDecode decodes hex bytes with the codec named in the path
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "codec")
	adapter, err := textcodec.For(id, s.options(r))
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	raw, err := textcodec.ParseHex(req.Hex)
	if err != nil {
		sendError(w, "Invalid hex: "+err.Error(), http.StatusBadRequest)
		return
	}

	value, err := adapter.Decode(raw)
	if err != nil {
		sendCodecError(w, err, http.StatusInternalServerError)
		return
	}
	sendSuccess(w, DecodeResponse{Codec: id, Value: value})
}

// tableRequest is the table and adapters selected by a request
type tableRequest struct {
	table *store.Table[[]byte, []byte]
	key   textcodec.Adapter
	value textcodec.Adapter
}

// openTable resolves the table from the path and the codecs from the
// key_codec and value_codec query parameters. Salt applies to keys only;
// compress and checksum to values only.
func (s *Server) openTable(r *http.Request) (*tableRequest, error) {
	if s.db == nil {
		return nil, store.ErrClosed
	}
	q := r.URL.Query()
	keyID := q.Get("key_codec")
	if keyID == "" {
		keyID = "string-raw"
	}
	valueID := q.Get("value_codec")
	if valueID == "" {
		valueID = "string-raw"
	}

	opts := s.options(r)
	key, err := textcodec.For(keyID, textcodec.Options{Salt: opts.Salt, Buckets: opts.Buckets})
	if err != nil {
		return nil, fmt.Errorf("key codec: %w", err)
	}
	value, err := textcodec.For(valueID, textcodec.Options{Compress: opts.Compress, Checksum: opts.Checksum})
	if err != nil {
		return nil, fmt.Errorf("value codec: %w", err)
	}

	name := chi.URLParam(r, "table")
	return &tableRequest{
		table: store.NewTable[[]byte, []byte](s.db, name, codec.ByteArray(false), codec.ByteArray(false)),
		key:   key,
		value: value,
	}, nil
}

// encodedKey reads the {key} path parameter and encodes it
func (tr *tableRequest) encodedKey(r *http.Request) ([]byte, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		return nil, err
	}
	return tr.key.Encode(raw)
}

// handlePut stores a value under the key in the path
func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	tr, err := s.openTable(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	key, err := tr.encodedKey(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	var req PutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	value, err := tr.value.Encode(req.Value)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	if err := tr.table.Put(key, value); err != nil {
		sendCodecError(w, fmt.Errorf("store value: %w", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"key": hex.EncodeToString(key)})
}

// handleGet returns the value stored under the key in the path
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	tr, err := s.openTable(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	key, err := tr.encodedKey(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	raw, err := tr.table.Get(key)
	if err != nil {
		sendCodecError(w, err, http.StatusInternalServerError)
		return
	}
	value, err := tr.value.Decode(raw)
	if err != nil {
		sendCodecError(w, err, http.StatusInternalServerError)
		return
	}
	sendSuccess(w, Row{Key: chi.URLParam(r, "key"), Value: value, Hex: hex.EncodeToString(raw)})
}

// handleDelete removes the key in the path. Deleting a missing key succeeds.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	tr, err := s.openTable(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	key, err := tr.encodedKey(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	if err := tr.table.Delete(key); err != nil {
		sendCodecError(w, fmt.Errorf("delete key: %w", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"message": "Key deleted successfully"})
}

// handleScan lists rows in encoded key order. from is inclusive, to is
// exclusive, and limit defaults to 100.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	tr, err := s.openTable(r)
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	bound := func(name string) (*[]byte, error) {
		v := q.Get(name)
		if v == "" {
			return nil, nil
		}
		k, err := tr.key.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &k, nil
	}
	from, err := bound("from")
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	to, err := bound("to")
	if err != nil {
		sendCodecError(w, err, http.StatusBadRequest)
		return
	}
	limit := defaultScanLimit
	if l := q.Get("limit"); l != "" {
		limit, err = strconv.Atoi(l)
		if err != nil || limit < 1 {
			sendError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
	}

	rows := []Row{}
	var rowErr error
	err = tr.table.Scan(r.Context(), from, to, func(k, v []byte) bool {
		key, err := tr.key.Decode(k)
		if err != nil {
			rowErr = fmt.Errorf("key %x: %w", k, err)
			return false
		}
		value, err := tr.value.Decode(v)
		if err != nil {
			rowErr = fmt.Errorf("value of %s: %w", key, err)
			return false
		}
		rows = append(rows, Row{Key: key, Value: value})
		return len(rows) < limit
	})
	if err == nil {
		err = rowErr
	}
	if err != nil {
		sendCodecError(w, err, http.StatusInternalServerError)
		return
	}
	sendSuccess(w, rows)
}

// Package api serves the codec registry and tables over HTTP.
//
// Routes under /api/v1 are JSON. Values travel in the text form described
// by package textcodec and raw bytes travel as hex. When an API key is
// configured every /api/v1 route requires a matching X-API-Key header;
// /metrics is always open for scraping.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rayokota/hentitydb-sub001/pkg/store"
)

var plog = logger.GetLogger("api")

const shutdownTimeout = 5 * time.Second

// NewRouter builds the chi router for s
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			r.Use(instrumentAuth(requireAPIKey(s.config.APIKey)))
		}

		r.Get("/health", InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Codecs
		r.Get("/codecs", InstrumentHandler("GET", "/api/v1/codecs", s.handleCodecs))
		r.Post("/encode/{codec}", InstrumentHandler("POST", "/api/v1/encode/{codec}", s.handleEncode))
		r.Post("/decode/{codec}", InstrumentHandler("POST", "/api/v1/decode/{codec}", s.handleDecode))

		// Tables
		r.Get("/tables/{table}/keys", InstrumentHandler("GET", "/api/v1/tables/{table}/keys", s.handleScan))
		r.Put("/tables/{table}/keys/{key}", InstrumentHandler("PUT", "/api/v1/tables/{table}/keys/{key}", s.handlePut))
		r.Get("/tables/{table}/keys/{key}", InstrumentHandler("GET", "/api/v1/tables/{table}/keys/{key}", s.handleGet))
		r.Delete("/tables/{table}/keys/{key}", InstrumentHandler("DELETE", "/api/v1/tables/{table}/keys/{key}", s.handleDelete))
	})

	return r
}

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, db *store.DB, config ServerConfig) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           NewRouter(NewServer(db, config)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		plog.Infof("serving on %s, metrics at /metrics", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		plog.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Package server exposes the latest sampling results over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/DrBitshift/statmon/internal/config"
	"github.com/DrBitshift/statmon/internal/server/middleware"
	"github.com/DrBitshift/statmon/model"
	"github.com/DrBitshift/statmon/storage"
)

// Store is the read surface the handlers serve from.
type Store interface {
	Reading() (model.Reading, bool)
	Text() string
	Value(name string) (float64, error)
}

type Server struct {
	store          Store
	config         *config.Config
	metricsHandler http.Handler
}

// NewServer creates a server over the given store. metricsHandler may be
// nil, in which case /metrics is not routed.
func NewServer(store Store, config *config.Config, metricsHandler http.Handler) *Server {
	return &Server{
		store:          store,
		config:         config,
		metricsHandler: metricsHandler,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (srv *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.config.Logger))
	router.Use(middleware.CompressMiddleware)

	router.Get("/", srv.StatusHandler)
	router.Get("/reading", srv.ReadingHandler)
	router.Get("/value/{name}", srv.ValueHandler)
	router.Get("/healthz", srv.HealthHandler)
	if srv.metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", srv.metricsHandler)
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    srv.config.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// StatusHandler serves the composed status line as plain text.
func (srv *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, srv.store.Text())
}

// ReadingHandler serves the last reading as JSON, 404 before the first
// tick.
func (srv *Server) ReadingHandler(w http.ResponseWriter, r *http.Request) {
	reading, ok := srv.store.Reading()
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reading); err != nil {
		srv.config.Logger.Errorf("failed to write reading JSON: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// ValueHandler serves a single named value from the last reading.
func (srv *Server) ValueHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	value, err := srv.store.Value(name)
	if err != nil {
		if errors.Is(err, storage.ErrValueNotFound) {
			http.NotFound(w, r)
			return
		}
		srv.config.Logger.Errorf("failed to get value [name=%s]: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	fmt.Fprintf(w, "%v", value)
}

func (srv *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// Package server provides a small HTTP preview server for the rendered
// dashboard and its underlying payload. It serves whatever the pipeline
// last wrote; it performs no computation of its own.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/opendunl/portlink/internal/config"
	"github.com/opendunl/portlink/internal/ingest"
	"github.com/opendunl/portlink/internal/render"
	"github.com/opendunl/portlink/pkg/models"
)

// Server is the dashboard preview HTTP server.
type Server struct {
	router chi.Router
	cfg    *config.Config
}

// NewServer creates a configured preview server with all routes and
// middleware.
func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))

	r.Get("/", s.handleDashboard)
	r.Get("/api/payload", s.handlePayload)
	r.Get("/api/status", s.handleStatus)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the server and blocks until SIGINT/SIGTERM,
// then shuts down gracefully.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.router}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Dashboard preview listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-done:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

// handleDashboard renders the dashboard from the latest payload artifact.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	payload, err := s.loadPayload()
	if err != nil {
		httpError(w, err)
		return
	}
	html, err := render.HTML(payload, s.cfg.Render.Title)
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// handlePayload serves the raw combined payload JSON.
func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	payload, err := s.loadPayload()
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, payload)
}

// handleStatus reports pipeline artifact presence.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, config.CheckArtifacts(s.cfg))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) loadPayload() (*models.Payload, error) {
	var payload models.Payload
	if err := ingest.ReadArtifact(s.cfg.PayloadPath(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func httpError(w http.ResponseWriter, err error) {
	var missing *ingest.MissingInputError
	if errors.As(err, &missing) {
		http.Error(w, "payload not built yet — run the pipeline first", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/falconsystemsai/UOA/internal/app"
)

// Server represents an HTTP server with all routes configured
type Server struct {
	orchestrator *app.Orchestrator
	log          *slog.Logger
	staticDir    string
	mux          *http.ServeMux
	server       *http.Server
}

// NewServer creates a new HTTP server with configured routes
func NewServer(addr string, orchestrator *app.Orchestrator, staticDir string, log *slog.Logger) *Server {
	mux := http.NewServeMux()

	server := &Server{
		orchestrator: orchestrator,
		log:          log,
		staticDir:    staticDir,
		mux:          mux,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	// Register routes
	server.registerRoutes()

	return server
}

// registerRoutes configures all HTTP routes
func (s *Server) registerRoutes() {
	// Unusual options activity endpoint
	s.mux.HandleFunc("/api/uoa", s.handleActivity)

	// Health check endpoint
	s.mux.HandleFunc("/health", s.handleHealth)

	// Static front end, when configured
	if s.staticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
}

// handleActivity serves one activity request through the read-through cache.
func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.New().String()

	query := ParseActivityQuery(r.URL.Query())
	resp := s.orchestrator.Handle(r.Context(), query)

	for k, v := range resp.Header {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		s.log.Warn("failed to write response", "request_id", reqID, "error", err)
		return
	}

	s.log.Info("activity request served",
		"request_id", reqID,
		"status", resp.Status,
		"tickers", query.Tickers,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

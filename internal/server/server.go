// Package server exposes the analysis pipeline over HTTP. It owns every
// wire concern the core refuses to: multipart ingestion, enum validation at
// the boundary, and ISO-8601 date serialization.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"treadscope/internal/analysis"
	"treadscope/internal/config"
	"treadscope/internal/version"
)

// Server wires the handlers to the analyzer and store.
type Server struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	store    *analysis.Store
	analyzer *analysis.Analyzer
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Server with a fresh in-memory store.
func New(cfg config.Config, logger *zap.SugaredLogger) *Server {
	return &Server{
		cfg:      cfg,
		log:      logger,
		store:    analysis.NewStore(),
		analyzer: analysis.NewAnalyzer(),
		validate: validator.New(),
		now:      time.Now,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/v1/analyses", func(r chi.Router) {
		r.Post("/", s.handleCreateAnalysis)
		r.Get("/{id}", s.handleGetAnalysis)
		r.Get("/{id}/state", s.handleState)
		r.Get("/{id}/frame", s.handleFrame)
		r.Get("/{id}/narrative", s.handleNarrative)
	})
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

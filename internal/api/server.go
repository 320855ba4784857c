// Package api implements the HTTP layer for the assessment backend.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wellora/assessment-backend/internal/assess"
	"github.com/wellora/assessment-backend/internal/db"
	"github.com/wellora/assessment-backend/internal/worker"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is used to construct the report access link in emails.
	// e.g. "https://app.wellora.app"
	BaseURL string

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// engine runs the submission pipeline: validate, dedup, score, persist.
	engine *assess.Engine

	// worker enqueues narrative jobs after a submission is stored.
	worker worker.Enqueuer

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	engine *assess.Engine,
	enqueuer worker.Enqueuer,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:      q,
		engine: engine,
		worker: enqueuer,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {
		// Submission — no auth required. The caller is identified by user_id
		// in the body, the X-Anon-Token header, or a hashed client IP.
		r.Post("/assessment", s.handleSubmitAssessment)

		// Report access — no auth (opaque session UUID in URL).
		r.Get("/assessment/{sessionID}", s.handleGetAssessment)
	})

	return r
}

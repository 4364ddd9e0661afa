// Package api serves the loaded goalie table and run control over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baxromumarov/goalie-stats/internal/core"
	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/store"
)

// Querier is the read side of the store.
type Querier interface {
	ListGoalies(ctx context.Context, f store.Filter) ([]goalie.Record, error)
	Count(ctx context.Context, f store.Filter) (int64, error)
	PartitionCounts(ctx context.Context) ([]store.PartitionCount, error)
}

// Runner executes one pipeline run.
type Runner interface {
	Run(ctx context.Context) (*core.Report, error)
}

type Server struct {
	router  *chi.Mux
	store   Querier
	runner  Runner
	metrics http.Handler
	logger  *slog.Logger

	// mu guards running and latest; runs never overlap.
	mu      sync.Mutex
	running bool
	latest  *core.Report
}

type Option func(*Server)

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewServer(q Querier, runner Runner, opts ...Option) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  q,
		runner: runner,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/goalies", s.handleListGoalies)
	s.router.Get("/partitions", s.handleListPartitions)
	s.router.Post("/runs", s.handleStartRun)
	s.router.Get("/runs/latest", s.handleLatestRun)
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics)
	}
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

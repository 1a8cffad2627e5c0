// Package api serves the comparison viewer over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/billtracer/internal/cache"
	"github.com/dgallion1/billtracer/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Fetcher downloads one version of a bill as plain text.
type Fetcher interface {
	FetchVersion(ctx context.Context, congress int, chamber string, number int, ver string) (string, error)
}

// Server is the BillTracer HTTP server.
type Server struct {
	router  chi.Router
	fetcher Fetcher
	cache   *cache.PageCache
	stats   *CompareStats
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(fetcher Fetcher, pages *cache.PageCache, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		fetcher: fetcher,
		cache:   pages,
		stats:   NewCompareStats(cfg.CacheTTL),
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/", s.handleIndex)
	r.Get("/view", s.handleView)

	// Admin endpoints; open when no key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.AdminAPIKey != "" {
			r.Use(s.requireAdminKey)
		}
		r.Get("/flush", s.handleFlush)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(config.AppVersion))
}

// Package server exposes the scan pipeline over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medilens/report-scanner/internal/pipeline"
)

type Server struct {
	scanner       *pipeline.Scanner
	logger        *slog.Logger
	maxUploadSize int64
	scanTimeout   time.Duration
}

type Option func(*Server)

func WithMaxUploadSize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadSize = n
		}
	}
}

func WithScanTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.scanTimeout = d
		}
	}
}

func New(scanner *pipeline.Scanner, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		scanner:       scanner,
		logger:        logger,
		maxUploadSize: 16 << 20,
		scanTimeout:   2 * time.Minute,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/scan", s.handleScan)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

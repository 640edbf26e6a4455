// Package api exposes the value-detection pipeline over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/cornerflag/internal/analysis"
	"github.com/yourusername/cornerflag/internal/metrics"
	"github.com/yourusername/cornerflag/internal/models"
)

// AnalysisProvider is the slice of the analysis service the API needs
type AnalysisProvider interface {
	FindValueBets(ctx context.Context, policy analysis.SortPolicy, limit int) ([]models.ValueAssessment, error)
	AssessMatch(ctx context.Context, matchID uuid.UUID) (*models.ValueAssessment, error)
}

// Config holds the API server configuration
type Config struct {
	Port           int
	CacheTTL       time.Duration
	RequestTimeout time.Duration
	MetricsEnabled bool
}

// Server serves the HTTP API. Responses to the value-bets listing are cached
// for the configured TTL so repeated polling does not re-run simulations.
type Server struct {
	cfg      Config
	analysis AnalysisProvider
	cache    *cache.Cache
	logger   *logrus.Logger
	server   *http.Server
}

// NewServer creates a new API server
func NewServer(cfg Config, analysis AnalysisProvider, logger *logrus.Logger) *Server {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 60 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 120 * time.Second
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Server{
		cfg:      cfg,
		analysis: analysis,
		cache:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/value-bets", s.handleValueBets)
		r.Get("/matches/{matchID}/assessment", s.handleMatchAssessment)
	})

	if s.cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	return r
}

// Start runs the API server until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.cfg.Port).Info("API server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the API server
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	s.logger.Info("API server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// requestLogger logs each request with structured fields
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Info("Request handled")
	})
}

// Package server exposes the pipeline's output to the presentation layer
// over a REST API. All endpoints read the latest applied snapshot; refreshes
// happen through the scheduler, never inline in a request.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"NickelSentinel/internal/config"
	"NickelSentinel/internal/store"
)

// Refresher triggers a manual refresh cycle.
type Refresher interface {
	RunRefreshNow()
}

// Server is the dashboard HTTP API server.
type Server struct {
	router    chi.Router
	cfg       *config.Config
	store     *store.Store
	refresher Refresher
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, st *store.Store, refresher Refresher) *Server {
	s := &Server{cfg: cfg, store: st, refresher: refresher}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down when ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] HTTP server listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.Server.CORSOrigins) > 0 {
		origins = s.cfg.Server.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/metrics", s.handleMetrics)
		r.Get("/historical", s.handleHistorical)
		r.Get("/predictions", s.handlePredictions)
		r.Get("/price-changes", s.handlePriceChanges)
		r.Get("/commodities", s.handleCommodities)

		r.Get("/merged", s.handleMerged)
		r.Get("/comparison", s.handleComparison)
		r.Get("/insights", s.handleInsights)

		r.Get("/settings", s.handleSettings)
		r.Get("/export/csv", s.handleExportCSV)
		r.Post("/refresh", s.handleRefresh)
	})

	return r
}

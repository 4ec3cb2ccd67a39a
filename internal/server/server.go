// Package server exposes the analysis engine over HTTP: a small web form,
// a JSON analysis endpoint, feature browsing, and the analysis history.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/history"
)

// Server serves the pain-point analysis API.
type Server struct {
	cfg        config.ServerConfig
	engine     *engine.Engine
	maxResults int
	store      *history.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around the given engine. The history store is
// optional; without it analyses are simply not recorded.
func New(cfg config.ServerConfig, eng *engine.Engine, maxResults int, store *history.Store) *Server {
	if maxResults <= 0 {
		maxResults = engine.DefaultMaxSolutions
	}
	s := &Server{
		cfg:        cfg,
		engine:     eng,
		maxResults: maxResults,
		store:      store,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/features", s.handleListFeatures)
	r.Get("/api/features/{id}", s.handleGetFeature)

	if s.store != nil {
		history.RegisterRoutes(r, s.store)
	}

	return r
}

// Router returns the chi router, mainly for tests and route registration.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("painpoint server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Package web provides the HTTP API for converting species datasets.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/dexconv/internal/config"
	"github.com/JonMunkholm/dexconv/internal/core"
	webmw "github.com/JonMunkholm/dexconv/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the conversion API.
type Server struct {
	aliases  *core.AliasTable
	defaults core.Options
	cfg      config.ServerConfig
	limiter  *core.Limiter
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a new Server instance. defaults supplies the duplicate
// policy, export name and size limit used when a request does not override them.
// Conversions are bounded by cfg.MaxConcurrent and cfg.MaxWait, falling back to
// the core defaults when unset.
func NewServer(cfg config.ServerConfig, aliases *core.AliasTable, defaults core.Options) *Server {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = core.DefaultMaxConcurrent
	}
	maxWait := cfg.MaxWait
	if maxWait <= 0 {
		maxWait = core.DefaultMaxWait
	}

	s := &Server{
		aliases:  aliases,
		defaults: defaults,
		cfg:      cfg,
		limiter:  core.NewLimiter(maxConcurrent, maxWait),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}
	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Post("/preview", s.handlePreview)
		r.Get("/schemas", s.handleListSchemas)
		r.Get("/schema/{version}", s.handleSchema)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	slog.Info("starting server", "addr", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, then waits for in-flight
// conversions to release their slots.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return s.limiter.WaitForDrain(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

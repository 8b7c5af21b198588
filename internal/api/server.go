// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api assembles the chi router, the global middleware chain and the
resource route groups into a runnable [http.Server].

Architecture:

  - Global stages (request id, access log, recovery, CORS, rate limit,
    timeout) run for every request, probes included.
  - Per-route stages (authentication, role, validation, listing) are declared
    by each resource handler when it registers its routes.
  - Only this package and cmd/api touch net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/studyhub/internal/platform/apperr"
	"github.com/taibuivan/studyhub/internal/platform/config"
	"github.com/taibuivan/studyhub/internal/platform/constants"
	"github.com/taibuivan/studyhub/internal/platform/middleware"
	"github.com/taibuivan/studyhub/internal/platform/respond"
	"github.com/taibuivan/studyhub/internal/platform/telemetry"
)

// Server owns the [http.Server] and its instrumented root handler.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// ResourceRoutes is implemented by every content resource handler.
type ResourceRoutes interface {
	RegisterRoutes(router chi.Router, verifier middleware.TokenVerifier)
}

// Mount places a resource under /api.
type Mount struct {
	// Path is relative to /api, e.g. "/notes".
	Path   string
	Routes ResourceRoutes
}

// Handlers groups everything the router serves.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Resources are mounted in order. Nil routes are skipped.
	Resources []Mount
}

// NewServer builds the router with the global chain and every route group.
//
// The context bounds background work such as rate limiter cleanup.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanup(ctx)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(limiter.Middleware)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound())
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusMethodNotAllowed, respond.MessageEnvelope{Message: "Method not allowed"})
	})

	// # Probes
	if h.Liveness != nil {
		r.Get("/health", h.Liveness)
	}
	if h.Readiness != nil {
		r.Get("/ready", h.Readiness)
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		for _, mount := range h.Resources {
			if mount.Routes == nil {
				continue
			}
			api.Route(mount.Path, func(sub chi.Router) {
				mount.Routes.RegisterRoutes(sub, verifier)
			})
		}
	})

	return &Server{
		log: log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           telemetry.Middleware(cfg.ServiceName)(r),
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		},
	}
}

// Handler returns the fully instrumented root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// # Server Lifecycle

// ListenAndServe blocks until the server is closed or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

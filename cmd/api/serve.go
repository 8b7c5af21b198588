// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/studyhub/internal/api"
	"github.com/taibuivan/studyhub/internal/core/assignment"
	"github.com/taibuivan/studyhub/internal/core/blog"
	"github.com/taibuivan/studyhub/internal/core/note"
	"github.com/taibuivan/studyhub/internal/core/question"
	"github.com/taibuivan/studyhub/internal/platform/config"
	"github.com/taibuivan/studyhub/internal/platform/constants"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/telemetry"
)

type loader func() (*config.Config, *slog.Logger, error)

func newServeCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

// serve runs the server until a signal arrives or it fails.
//
// # Startup Sequence
//
//  1. Initialize tracing.
//  2. Connect the configured store and optional cache.
//  3. Build the credential verifier.
//  4. Wire resource handlers.
//  5. Start HTTP server with graceful shutdown.
func serve(parent context.Context, cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(ctx, 30*time.Second)
	defer startupCancel()

	// ── 1. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := telemetry.Init(startupCtx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Version:     constants.AppVersion,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	}, log)
	if err != nil {
		return startupFailure(log, "initialize telemetry", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("telemetry_shutdown_error", slog.Any("error", err))
		}
	}()

	// ── 2. Storage ────────────────────────────────────────────────────────
	backend, err := openBackend(startupCtx, cfg, log)
	if err != nil {
		return startupFailure(log, "connect storage", err)
	}
	defer backend.Close()

	// ── 3. Credentials ────────────────────────────────────────────────────
	verifier, err := newTokenService(cfg)
	if err != nil {
		return startupFailure(log, "initialize credential verifier", err)
	}

	// ── 4. Handlers ───────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(backend.HealthDependencies(), log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Resources: []api.Mount{
			{Path: "/notes", Routes: newHandler(backend, note.Resource, log)},
			{Path: "/assignments", Routes: newHandler(backend, assignment.Resource, log)},
			{Path: "/old-questions", Routes: newHandler(backend, question.Resource, log)},
			{Path: "/blogs", Routes: newHandler(backend, blog.Resource, log)},
		},
	}

	server := api.NewServer(ctx, cfg, log, verifier, handlers)

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
		return err
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return err
	}

	log.Info("server_stopped_cleanly")
	return nil
}

// newTokenService selects RS256 when a public key is configured, HS256 otherwise.
func newTokenService(cfg *config.Config) (*sec.TokenService, error) {
	if cfg.UsesRSA() {
		return sec.NewRSATokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, cfg.JWTIssuer)
	}
	return sec.NewHMACTokenService(cfg.JWTSecret, cfg.JWTIssuer)
}

// startupFailure logs a structured startup error and returns it.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func startupFailure(log *slog.Logger, step string, err error) error {
	log.Error("startup_failure",
		slog.String("context", step),
		slog.Any("error", err),
	)
	return fmt.Errorf("%s: %w", step, err)
}

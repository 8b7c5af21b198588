// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the StudyHub HTTP API server.
//
// # Commands
//
//	studyhub serve          start the HTTP server (default)
//	studyhub migrate up     apply SQL migrations
//	studyhub migrate down   roll back the latest migration
//	studyhub migrate status print the schema version
//	studyhub token          issue a credential for local testing
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"

	"github.com/taibuivan/studyhub/internal/platform/config"
	"github.com/taibuivan/studyhub/internal/platform/constants"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "studyhub",
		Short:         "StudyHub content API",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	load := func() (*config.Config, *slog.Logger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			log := newLogger(false)
			log.Error("startup_failure", slog.String("context", "load configuration"), slog.Any("error", err))
			return nil, nil, err
		}
		return cfg, newLogger(cfg.Debug), nil
	}

	serve := newServeCommand(load)
	root.AddCommand(serve, newMigrateCommand(load), newTokenCommand(load))

	// Running the bare binary starts the server.
	root.RunE = serve.RunE
	return root
}

// newLogger builds the process logger. Initialize first so that subsequent
// startup errors are structured JSON.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "studyhub"))
	slog.SetDefault(log)
	return log
}

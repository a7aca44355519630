package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/dexconv/internal/config"
	"github.com/JonMunkholm/dexconv/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config, opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP API",
		Long: `Run the conversion HTTP API.

Endpoints:
  POST /api/convert            convert the request body (CSV) or multipart "file"
  POST /api/preview            dry-run a conversion and report entries and problems
  GET  /api/schemas            list schema versions
  GET  /api/schema/{version}   list the columns of a schema
  GET  /health                 liveness check and conversion slot usage

Query parameters for convert and preview: standalone, strict, export, format.
SERVER_MAX_CONCURRENT bounds parallel conversions; requests wait up to
SERVER_MAX_WAIT for a slot before answering 503.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg, *opts)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, opts runOptions) error {
	aliases, err := loadAliases(opts.aliasFile)
	if err != nil {
		return err
	}

	server := web.NewServer(cfg.Server, aliases, convertOptions(cfg, opts))

	slog.Info("configuration loaded", "config", cfg.String())

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	slog.Info("server stopped")
	return nil
}

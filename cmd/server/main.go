// Package main implements the entry point for the todo summary API server,
// which manages a list of todos and summarizes the pending ones with an
// optional LLM provider and an optional Slack webhook.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// main is the entry point for the todo-summary-api server.
func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, wires the application and
// serves HTTP until a shutdown signal arrives or ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("llm_configured", cfg.LLM.Configured()))

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/notify"
	"github.com/phrazzld/todo-summary-api/internal/platform/gemini"
	"github.com/phrazzld/todo-summary-api/internal/platform/memory"
	"github.com/phrazzld/todo-summary-api/internal/platform/openai"
	"github.com/phrazzld/todo-summary-api/internal/platform/slack"
	"github.com/phrazzld/todo-summary-api/internal/service"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores
	todoStore store.TodoStore

	// Optional capabilities; the zero values mean "not configured"
	generator generation.Client
	channel   notify.Channel

	// Service interfaces
	todoService    service.TodoService
	summaryService service.SummaryService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		todoStore: memory.NewMemoryTodoStore(logger),
	}

	var err error
	app.generator, err = newGenerationClient(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	app.channel, err = newNotifyChannel(cfg.Notify, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification channel: %w", err)
	}

	app.todoService, err = service.NewTodoService(app.todoStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	app.summaryService, err = service.NewSummaryService(app.todoStore, app.generator, app.channel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	return app, nil
}

// newGenerationClient builds the generator for the configured provider, or
// an unconfigured client when the provider's API key is absent.
func newGenerationClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Client, error) {
	if !cfg.Configured() {
		logger.Info("Text generation not configured, heuristic summaries will be used",
			slog.String("provider", cfg.Provider))
		return generation.Client{}, nil
	}

	genLogger := logger.With(slog.String("component", "llm_generator"))

	var (
		generator generation.Generator
		err       error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		generator, err = gemini.NewGeminiGenerator(ctx, genLogger, cfg)
	default:
		generator, err = openai.NewOpenAIGenerator(genLogger, cfg)
	}
	if err != nil {
		return generation.Client{}, err
	}

	logger.Info("LLM generator initialized successfully", slog.String("provider", cfg.Provider))
	return generation.NewClient(generator), nil
}

// newNotifyChannel builds the Slack dispatcher when a usable webhook URL is
// configured, or an unconfigured channel otherwise.
func newNotifyChannel(cfg config.NotifyConfig, logger *slog.Logger) (notify.Channel, error) {
	if !notify.IsUsableWebhookURL(cfg.SlackWebhookURL) {
		logger.Info("Slack webhook not configured, summaries will not be delivered")
		return notify.Channel{}, nil
	}

	dispatcher, err := slack.NewWebhookDispatcher(logger, cfg)
	if err != nil {
		return notify.Channel{}, err
	}

	logger.Info("Slack webhook dispatcher initialized")
	return notify.NewChannel(dispatcher), nil
}

package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	oai "github.com/sashabaranov/go-openai"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = oai.GPT3Dot5Turbo

// OpenAIGenerator implements the generation.Generator interface using
// OpenAI chat completions.
type OpenAIGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the OpenAI API client for making requests
	client *oai.Client

	// model is the name of the chat model to use
	model string

	// timeout bounds a single API call; zero means no client-side limit
	timeout time.Duration
}

var _ generation.Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a new OpenAIGenerator from the LLM configuration.
// It returns an error wrapping generation.ErrInvalidConfig when the API key is missing.
func NewOpenAIGenerator(logger *slog.Logger, cfg config.LLMConfig) (*OpenAIGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := oai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	clientConfig.HTTPClient = cleanhttp.DefaultPooledClient()

	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		logger:  logger,
		client:  oai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// buildRequest assembles the chat completion request for the given todos.
func (g *OpenAIGenerator) buildRequest(todos []domain.Todo) oai.ChatCompletionRequest {
	return oai.ChatCompletionRequest{
		Model: g.model,
		Messages: []oai.ChatCompletionMessage{
			{Role: oai.ChatMessageRoleSystem, Content: generation.SystemInstruction},
			{Role: oai.ChatMessageRoleUser, Content: generation.UserPrompt(todos)},
		},
	}
}

// GenerateSummary implements generation.Generator. It makes exactly one API
// call and returns the first choice's content verbatim.
func (g *OpenAIGenerator) GenerateSummary(ctx context.Context, todos []domain.Todo) (string, error) {
	if len(todos) == 0 {
		return "", fmt.Errorf("%w: no todos to summarize", generation.ErrGenerationFailed)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.InfoContext(ctx, "Making OpenAI API call",
		"model", g.model,
		"todo_count", len(todos))

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, g.buildRequest(todos))
	if err != nil {
		var apiErr *oai.APIError
		if errors.As(err, &apiErr) {
			g.logger.WarnContext(ctx, "OpenAI API returned an error",
				"status_code", apiErr.HTTPStatusCode,
				"error_type", apiErr.Type)
		}
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == oai.FinishReasonContentFilter {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}
	if choice.Message.Content == "" {
		return "", fmt.Errorf("%w: empty message content", generation.ErrInvalidResponse)
	}

	g.logger.InfoContext(ctx, "OpenAI API call successful",
		"duration_ms", time.Since(start).Milliseconds(),
		"summary_length", len(choice.Message.Content))

	return choice.Message.Content, nil
}

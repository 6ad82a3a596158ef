package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"google.golang.org/genai"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// contentGenerator is the subset of the genai Models service used here.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models is the Gemini content generation service
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	// timeout bounds a single API call; zero means no client-side limit
	timeout time.Duration
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator from the LLM configuration.
//
// Returns an error wrapping generation.ErrInvalidConfig if the API key is
// missing or the client cannot be created.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cleanhttp.DefaultPooledClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGeminiGenerator(logger, client.Models, cfg), nil
}

func newGeminiGenerator(logger *slog.Logger, models contentGenerator, cfg config.LLMConfig) *GeminiGenerator {
	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &GeminiGenerator{
		logger:  logger,
		models:  models,
		model:   model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// GenerateSummary implements generation.Generator. It makes exactly one API
// call and returns the text of the first candidate.
func (g *GeminiGenerator) GenerateSummary(ctx context.Context, todos []domain.Todo) (string, error) {
	if len(todos) == 0 {
		return "", fmt.Errorf("%w: no todos to summarize", generation.ErrGenerationFailed)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: generation.UserPrompt(todos)}}},
	}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: generation.SystemInstruction}},
		},
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"todo_count", len(todos))

	resp, err := g.models.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"summary_length", len(text))

	return text, nil
}

// extractText pulls the text out of the first candidate of a response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}

	return text, nil
}

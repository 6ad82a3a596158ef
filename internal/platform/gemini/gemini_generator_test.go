package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
)

var testTodos = []domain.Todo{
	{ID: 1, Title: "Buy milk"},
	{ID: 2, Title: "Renew passport"},
}

// fakeModels records GenerateContent calls and returns a canned response.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	calls    int
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	f.config = config
	_, f.deadline = ctx.Deadline()
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}

func newTestGenerator(t *testing.T, models contentGenerator, cfg config.LLMConfig) *GeminiGenerator {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	return newGeminiGenerator(log, models, cfg)
}

func TestNewGeminiGenerator_Validation(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	ctx := context.Background()

	_, err := NewGeminiGenerator(ctx, nil, config.LLMConfig{GeminiAPIKey: "AIza-test"})
	assert.Error(t, err)

	_, err = NewGeminiGenerator(ctx, log, config.LLMConfig{})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewGeminiGenerator_ModelDefault(t *testing.T) {
	gen := newTestGenerator(t, &fakeModels{}, config.LLMConfig{})
	assert.Equal(t, DefaultModel, gen.model)

	gen = newTestGenerator(t, &fakeModels{}, config.LLMConfig{ModelName: "gemini-1.5-pro"})
	assert.Equal(t, "gemini-1.5-pro", gen.model)
}

func TestGenerateSummary_Success(t *testing.T) {
	models := &fakeModels{resp: textResponse("  Groceries and errands.  ")}
	gen := newTestGenerator(t, models, config.LLMConfig{})

	summary, err := gen.GenerateSummary(context.Background(), testTodos)
	require.NoError(t, err)
	assert.Equal(t, "Groceries and errands.", summary)

	assert.Equal(t, 1, models.calls)
	assert.Equal(t, DefaultModel, models.model)
	require.Len(t, models.contents, 1)
	require.Len(t, models.contents[0].Parts, 1)
	assert.Contains(t, models.contents[0].Parts[0].Text, "- Buy milk\n- Renew passport")

	require.NotNil(t, models.config)
	require.NotNil(t, models.config.SystemInstruction)
	assert.Equal(t, generation.SystemInstruction, models.config.SystemInstruction.Parts[0].Text)
	assert.False(t, models.deadline, "no timeout configured")
}

func TestGenerateSummary_AppliesTimeout(t *testing.T) {
	models := &fakeModels{resp: textResponse("ok")}
	gen := newTestGenerator(t, models, config.LLMConfig{TimeoutSeconds: 5})
	assert.Equal(t, 5*time.Second, gen.timeout)

	_, err := gen.GenerateSummary(context.Background(), testTodos)
	require.NoError(t, err)
	assert.True(t, models.deadline)
}

func TestGenerateSummary_Failures(t *testing.T) {
	tests := []struct {
		name    string
		models  *fakeModels
		wantErr error
	}{
		{
			name:    "api error",
			models:  &fakeModels{err: errors.New("503 unavailable")},
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name:    "nil response",
			models:  &fakeModels{},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "no candidates",
			models:  &fakeModels{resp: &genai.GenerateContentResponse{}},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "empty text",
			models:  &fakeModels{resp: textResponse("   ")},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "safety finish",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			wantErr: generation.ErrContentBlocked,
		},
		{
			name: "prompt blocked",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
					BlockReason: genai.BlockedReasonSafety,
				},
			}},
			wantErr: generation.ErrContentBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(t, tt.models, config.LLMConfig{})

			summary, err := gen.GenerateSummary(context.Background(), testTodos)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, summary)
			assert.Equal(t, 1, tt.models.calls)
		})
	}
}

func TestGenerateSummary_NoTodos(t *testing.T) {
	models := &fakeModels{resp: textResponse("unused")}
	gen := newTestGenerator(t, models, config.LLMConfig{})

	_, err := gen.GenerateSummary(context.Background(), nil)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Zero(t, models.calls)
}

func TestExtractText_JoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "Two "}, nil, {Text: "errands."}}},
		}},
	}

	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Two errands.", text)
}

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	oai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
)

var testTodos = []domain.Todo{
	{ID: 1, Title: "Buy milk"},
	{ID: 2, Title: "Renew passport"},
}

// newTestGenerator points a generator at an httptest server running handler.
func newTestGenerator(t *testing.T, handler http.HandlerFunc, timeoutSeconds int) *OpenAIGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, _ := logger.NewTestLogger(t)
	gen, err := NewOpenAIGenerator(log, config.LLMConfig{
		Provider:       config.ProviderOpenAI,
		OpenAIAPIKey:   "sk-test",
		OpenAIBaseURL:  server.URL + "/v1",
		TimeoutSeconds: timeoutSeconds,
	})
	require.NoError(t, err)
	return gen
}

func writeCompletion(t *testing.T, w http.ResponseWriter, content string, finishReason oai.FinishReason) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	resp := oai.ChatCompletionResponse{
		ID:     "chatcmpl-test",
		Object: "chat.completion",
		Model:  DefaultModel,
		Choices: []oai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      oai.ChatCompletionMessage{Role: oai.ChatMessageRoleAssistant, Content: content},
				FinishReason: finishReason,
			},
		},
	}
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestNewOpenAIGenerator_Validation(t *testing.T) {
	log, _ := logger.NewTestLogger(t)

	_, err := NewOpenAIGenerator(nil, config.LLMConfig{OpenAIAPIKey: "sk-test"})
	assert.Error(t, err)

	_, err = NewOpenAIGenerator(log, config.LLMConfig{})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	gen, err := NewOpenAIGenerator(log, config.LLMConfig{OpenAIAPIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, gen.model)

	gen, err = NewOpenAIGenerator(log, config.LLMConfig{OpenAIAPIKey: "sk-test", ModelName: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", gen.model)
}

func TestGenerateSummary_Success(t *testing.T) {
	var captured oai.ChatCompletionRequest
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeCompletion(t, w, "Errands and paperwork.", oai.FinishReasonStop)
	}, 5)

	summary, err := gen.GenerateSummary(context.Background(), testTodos)
	require.NoError(t, err)
	assert.Equal(t, "Errands and paperwork.", summary)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, oai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, generation.SystemInstruction, captured.Messages[0].Content)
	assert.Equal(t, oai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].Content, "- Buy milk\n- Renew passport")
	assert.Equal(t, DefaultModel, captured.Model)
}

func TestGenerateSummary_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			},
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			},
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
			},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeCompletion(t, w, "", oai.FinishReasonStop)
			},
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name: "content filtered",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeCompletion(t, w, "partial", oai.FinishReasonContentFilter)
			},
			wantErr: generation.ErrContentBlocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := newTestGenerator(t, tc.handler, 5)
			_, err := gen.GenerateSummary(context.Background(), testTodos)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerateSummary_Timeout(t *testing.T) {
	release := make(chan struct{})
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 0)
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := gen.GenerateSummary(ctx, testTodos)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestGenerateSummary_NoTodos(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, 5)

	_, err := gen.GenerateSummary(context.Background(), nil)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

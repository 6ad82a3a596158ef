package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-summary-api/internal/api/shared"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/notify"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
	"github.com/phrazzld/todo-summary-api/internal/platform/memory"
	"github.com/phrazzld/todo-summary-api/internal/service"
)

// testAPI bundles a router over real services and an in-memory store.
type testAPI struct {
	router http.Handler
	store  *memory.MemoryTodoStore
}

func newTestAPI(t *testing.T, client generation.Client, channel notify.Channel) *testAPI {
	t.Helper()

	log, _ := logger.NewTestLogger(t)
	todoStore := memory.NewMemoryTodoStore(log)

	todoService, err := service.NewTodoService(todoStore, log)
	require.NoError(t, err)
	summaryService, err := service.NewSummaryService(todoStore, client, channel, log)
	require.NoError(t, err)

	todoHandler := NewTodoHandler(todoService, log)
	summaryHandler := NewSummaryHandler(summaryService, log)

	r := chi.NewRouter()
	r.Get("/api/todos", todoHandler.ListTodos)
	r.Post("/api/todos", todoHandler.CreateTodo)
	r.Delete("/api/todos/{id}", todoHandler.DeleteTodo)
	r.Post("/api/summarize", summaryHandler.Summarize)
	r.Get("/api/summarize", summaryHandler.SummarizeUsage)

	return &testAPI{router: r, store: todoStore}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rr)
}

// newRouterFor routes a single method and pattern to h.
func newRouterFor(method, pattern string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	return r
}

// newRouterForError runs HandleAPIError for err and returns the recording.
func newRouterForError(t *testing.T, err error, serverMessage string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(rr, req, err, serverMessage)
	return rr
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/mocks"
	"github.com/phrazzld/todo-summary-api/internal/notify"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
	"github.com/phrazzld/todo-summary-api/internal/service"
)

func TestNewTodoHandler_NilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() { NewTodoHandler(nil, nil) })
}

func TestListTodos_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})

	rr := api.do(t, http.MethodGet, "/api/todos", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCreateTodo(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})

	rr := api.do(t, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	todo := decodeBody[TodoResponse](t, rr)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.Positive(t, todo.ID)

	rr = api.do(t, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []TodoResponse{todo}, decodeBody[[]TodoResponse](t, rr))
}

func TestCreateTodo_FreshIDs(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})

	first := decodeBody[TodoResponse](t, api.do(t, http.MethodPost, "/api/todos", `{"title":"One"}`))
	second := decodeBody[TodoResponse](t, api.do(t, http.MethodPost, "/api/todos", `{"title":"Two"}`))
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateTodo_TitleRequired(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})

	for _, body := range []string{`{"title":""}`, `{}`, `null`, ""} {
		t.Run(fmt.Sprintf("body %q", body), func(t *testing.T) {
			rr := api.do(t, http.MethodPost, "/api/todos", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Title is required", decodeError(t, rr).Error)
		})
	}

	todos, err := api.store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestCreateTodo_MalformedBody(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})

	for _, body := range []string{`{"title":`, `{"title":5}`, `[]`} {
		rr := api.do(t, http.MethodPost, "/api/todos", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.Equal(t, "Invalid request format", decodeError(t, rr).Error)
	}
}

func TestDeleteTodo(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})
	ctx := context.Background()
	require.NoError(t, api.store.Add(ctx, &domain.Todo{ID: 1, Title: "Buy milk"}))
	require.NoError(t, api.store.Add(ctx, &domain.Todo{ID: 2, Title: "Walk dog"}))

	rr := api.do(t, http.MethodDelete, "/api/todos/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Todo deleted successfully", decodeBody[MessageResponse](t, rr).Message)

	rr = api.do(t, http.MethodGet, "/api/todos", "")
	assert.Equal(t, []TodoResponse{{ID: 2, Title: "Walk dog"}}, decodeBody[[]TodoResponse](t, rr))
}

func TestDeleteTodo_NotFound(t *testing.T) {
	api := newTestAPI(t, generation.Client{}, notify.Channel{})
	require.NoError(t, api.store.Add(context.Background(), &domain.Todo{ID: 1, Title: "Buy milk"}))

	for _, id := range []string{"999", "abc", "1.5"} {
		rr := api.do(t, http.MethodDelete, "/api/todos/"+id, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "id %s", id)
		assert.Equal(t, "Todo not found", decodeError(t, rr).Error)
	}

	todos, err := api.store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestListTodos_StoreFailure(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	todoStore := &mocks.MockTodoStore{
		ListFn: func(ctx context.Context) ([]domain.Todo, error) {
			return nil, errors.New("connection reset")
		},
	}
	todoService, err := service.NewTodoService(todoStore, log)
	require.NoError(t, err)
	handler := NewTodoHandler(todoService, log)

	api := &testAPI{}
	r := newRouterFor(http.MethodGet, "/api/todos", handler.ListTodos)
	api.router = r

	rr := api.do(t, http.MethodGet, "/api/todos", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "Failed to fetch todos", resp.Error)
	assert.Empty(t, resp.Details)
}

package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/todo-summary-api/internal/api/shared"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
	"github.com/phrazzld/todo-summary-api/internal/service"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoHandler")
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// ListTodos handles GET /api/todos requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch todos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todosToResponse(todos))
}

// CreateTodo handles POST /api/todos requests
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// A missing body is treated like a body without a title
	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		log.Debug("invalid create todo body", slog.String("error", err.Error()))
		HandleAPIError(w, r, domain.NewValidationError("body", "is not valid JSON", domain.ErrValidation), "")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, domain.ErrEmptyTitle, "")
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req.Title)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todoToResponse(*todo))
}

// DeleteTodo handles DELETE /api/todos/{id} requests
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
}

// getPathID extracts an integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

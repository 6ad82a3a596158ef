package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// TodoService provides todo-related operations
type TodoService interface {
	// ListTodos returns every todo in insertion order
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo creates a new pending todo with the given title.
	// Returns domain.ErrEmptyTitle if the title is empty.
	CreateTodo(ctx context.Context, title string) (*domain.Todo, error)

	// DeleteTodo removes a todo by ID.
	// Returns store.ErrTodoNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	todoStore store.TodoStore
	logger    *slog.Logger
}

// NewTodoService creates a new TodoService
// It returns an error if the store is nil.
func NewTodoService(todoStore store.TodoStore, logger *slog.Logger) (TodoService, error) {
	if todoStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "todoStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &todoServiceImpl{
		todoStore: todoStore,
		logger:    logger.With("component", "todo_service"),
	}, nil
}

// ListTodos implements TodoService
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	todos, err := s.todoStore.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_todos", "failed to list todos", err)
	}
	return todos, nil
}

// CreateTodo implements TodoService
func (s *todoServiceImpl) CreateTodo(ctx context.Context, title string) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	todo, err := s.todoStore.Create(ctx, title)
	if err != nil {
		log.Debug("failed to create todo", slog.String("error", err.Error()))
		return nil, NewServiceError("create_todo", "failed to create todo", err)
	}

	log.Info("todo created", slog.Int64("todo_id", todo.ID))
	return todo, nil
}

// DeleteTodo implements TodoService
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.todoStore.Delete(ctx, id); err != nil {
		log.Debug("failed to delete todo",
			slog.Int64("todo_id", id),
			slog.String("error", err.Error()))
		return NewServiceError("delete_todo", "failed to delete todo", err)
	}

	log.Info("todo deleted", slog.Int64("todo_id", id))
	return nil
}

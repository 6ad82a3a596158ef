package mocks

import (
	"context"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// MockTodoStore implements store.TodoStore with overridable functions.
// Methods whose function field is nil return zero values and a nil error.
type MockTodoStore struct {
	CreateFn           func(ctx context.Context, title string) (*domain.Todo, error)
	AddFn              func(ctx context.Context, todo *domain.Todo) error
	DeleteFn           func(ctx context.Context, id int64) error
	ListFn             func(ctx context.Context) ([]domain.Todo, error)
	ListByCompletionFn func(ctx context.Context, completed bool) ([]domain.Todo, error)
}

var _ store.TodoStore = (*MockTodoStore)(nil)

// Create implements store.TodoStore
func (m *MockTodoStore) Create(ctx context.Context, title string) (*domain.Todo, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title)
	}
	return nil, nil
}

// Add implements store.TodoStore
func (m *MockTodoStore) Add(ctx context.Context, todo *domain.Todo) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, todo)
	}
	return nil
}

// Delete implements store.TodoStore
func (m *MockTodoStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// List implements store.TodoStore
func (m *MockTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// ListByCompletion implements store.TodoStore
func (m *MockTodoStore) ListByCompletion(ctx context.Context, completed bool) ([]domain.Todo, error) {
	if m.ListByCompletionFn != nil {
		return m.ListByCompletionFn(ctx, completed)
	}
	return nil, nil
}

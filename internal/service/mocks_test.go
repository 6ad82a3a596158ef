package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// MockTodoStore is a mock implementation of store.TodoStore
type MockTodoStore struct {
	mock.Mock
}

func (m *MockTodoStore) Create(ctx context.Context, title string) (*domain.Todo, error) {
	args := m.Called(ctx, title)
	todo, _ := args.Get(0).(*domain.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoStore) Add(ctx context.Context, todo *domain.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	todos, _ := args.Get(0).([]domain.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoStore) ListByCompletion(ctx context.Context, completed bool) ([]domain.Todo, error) {
	args := m.Called(ctx, completed)
	todos, _ := args.Get(0).([]domain.Todo)
	return todos, args.Error(1)
}

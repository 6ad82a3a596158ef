package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// MemoryTodoStore implements store.TodoStore with an in-memory slice guarded
// by a RWMutex. Reads copy the slice under the read lock so callers always
// see a consistent snapshot.
type MemoryTodoStore struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	lastID int64
	now    func() time.Time
	logger *slog.Logger
}

// Ensure MemoryTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*MemoryTodoStore)(nil)

// NewMemoryTodoStore creates an empty in-memory todo store.
func NewMemoryTodoStore(logger *slog.Logger) *MemoryTodoStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryTodoStore{
		todos:  make([]domain.Todo, 0),
		now:    time.Now,
		logger: logger.With("component", "memory_todo_store"),
	}
}

// nextID returns a time-derived ID that is strictly greater than any ID handed
// out before, so IDs stay unique even when two todos land in the same millisecond.
// Callers must hold the write lock.
func (s *MemoryTodoStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Create implements store.TodoStore.Create
func (s *MemoryTodoStore) Create(ctx context.Context, title string) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, err := domain.NewTodo(s.nextID(), title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.todos = append(s.todos, *todo)
	s.logger.DebugContext(ctx, "todo created", "todo_id", todo.ID, "todo_count", len(s.todos))

	created := *todo
	return &created, nil
}

// Add implements store.TodoStore.Add
func (s *MemoryTodoStore) Add(ctx context.Context, todo *domain.Todo) error {
	if todo == nil {
		return fmt.Errorf("%w: todo cannot be nil", store.ErrInvalidEntity)
	}
	if err := todo.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.todos {
		if existing.ID == todo.ID {
			return store.NewStoreError("todo", "add", fmt.Sprintf("id %d already in use", todo.ID), store.ErrTodoExists)
		}
	}

	s.todos = append(s.todos, *todo)
	if todo.ID > s.lastID {
		s.lastID = todo.ID
	}
	s.logger.DebugContext(ctx, "todo added", "todo_id", todo.ID, "completed", todo.Completed)
	return nil
}

// Delete implements store.TodoStore.Delete
func (s *MemoryTodoStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			s.logger.DebugContext(ctx, "todo deleted", "todo_id", id, "todo_count", len(s.todos))
			return nil
		}
	}

	return store.ErrTodoNotFound
}

// List implements store.TodoStore.List
func (s *MemoryTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Todo, len(s.todos))
	copy(snapshot, s.todos)
	return snapshot, nil
}

// ListByCompletion implements store.TodoStore.ListByCompletion
func (s *MemoryTodoStore) ListByCompletion(ctx context.Context, completed bool) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if t.Completed == completed {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

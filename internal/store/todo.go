package store

import (
	"context"

	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// TodoStore defines the interface for todo persistence.
// Implementations must be safe for concurrent use; List and ListByCompletion
// return snapshots that callers may read without further locking.
type TodoStore interface {
	// Create assigns a fresh ID to a new pending todo with the given title,
	// stores it and returns a copy.
	// Returns an error wrapping domain.ErrEmptyTitle if the title is empty.
	Create(ctx context.Context, title string) (*domain.Todo, error)

	// Add stores a fully formed todo, keeping its ID and completion state.
	// Returns ErrTodoExists if the ID is already in use.
	Add(ctx context.Context, todo *domain.Todo) error

	// Delete removes the todo with the given ID.
	// Returns ErrTodoNotFound if no such todo exists.
	Delete(ctx context.Context, id int64) error

	// List returns all todos in insertion order.
	List(ctx context.Context) ([]domain.Todo, error)

	// ListByCompletion returns the todos whose Completed flag equals completed,
	// in insertion order.
	ListByCompletion(ctx context.Context, completed bool) ([]domain.Todo, error)
}

package domain

import "strings"

// Todo is a short task tracked by the application.
// IDs are assigned by the store at creation time and never reused.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTodo creates a pending Todo with the given ID and title.
// Returns ErrEmptyTitle if the title is empty.
func NewTodo(id int64, title string) (*Todo, error) {
	todo := &Todo{
		ID:        id,
		Title:     title,
		Completed: false,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks that the Todo has a usable ID and a title.
func (t *Todo) Validate() error {
	if t.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	return nil
}

// IsPending reports whether the todo still needs doing.
func (t Todo) IsPending() bool {
	return !t.Completed
}

// PendingTodos returns the pending todos from the given slice, preserving order.
func PendingTodos(todos []Todo) []Todo {
	pending := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending
}

// RenderTodoList renders todos as "- title" lines joined by newlines.
// The same text is fed to the generator, embedded in notifications and
// returned to the caller.
func RenderTodoList(todos []Todo) string {
	lines := make([]string, 0, len(todos))
	for _, t := range todos {
		lines = append(lines, "- "+t.Title)
	}
	return strings.Join(lines, "\n")
}

package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/todo-summary-api/internal/notify"
)

// MockDispatcher implements notify.Dispatcher for testing
type MockDispatcher struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, summary string, todosText string) error

	// Err is returned by Send when SendFn is nil
	Err error

	mu        sync.Mutex
	summaries []string
	todoTexts []string
}

var _ notify.Dispatcher = (*MockDispatcher)(nil)

// Send implements the notify.Dispatcher interface
func (m *MockDispatcher) Send(ctx context.Context, summary string, todosText string) error {
	m.mu.Lock()
	m.summaries = append(m.summaries, summary)
	m.todoTexts = append(m.todoTexts, todosText)
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, summary, todosText)
	}
	return m.Err
}

// CallCount returns how many times Send was called
func (m *MockDispatcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.summaries)
}

// LastSummary returns the summary passed to the most recent call
func (m *MockDispatcher) LastSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.summaries) == 0 {
		return ""
	}
	return m.summaries[len(m.summaries)-1]
}

// LastTodosText returns the todo list passed to the most recent call
func (m *MockDispatcher) LastTodosText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.todoTexts) == 0 {
		return ""
	}
	return m.todoTexts[len(m.todoTexts)-1]
}

// MockDispatcherThatFails creates a MockDispatcher whose deliveries fail
func MockDispatcherThatFails() *MockDispatcher {
	return &MockDispatcher{Err: notify.ErrDeliveryFailed}
}

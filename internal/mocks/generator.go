package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateSummaryFn allows test cases to mock the GenerateSummary behavior
	GenerateSummaryFn func(ctx context.Context, todos []domain.Todo) (string, error)

	// Default response values
	Summary string
	Err     error

	// mu protects the call tracking state for concurrent test cases
	mu sync.Mutex

	// calls contains the todos passed to each GenerateSummary call
	calls [][]domain.Todo
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateSummary implements the generation.Generator interface
func (m *MockGenerator) GenerateSummary(ctx context.Context, todos []domain.Todo) (string, error) {
	m.mu.Lock()
	snapshot := make([]domain.Todo, len(todos))
	copy(snapshot, todos)
	m.calls = append(m.calls, snapshot)
	m.mu.Unlock()

	// Use custom function if provided
	if m.GenerateSummaryFn != nil {
		return m.GenerateSummaryFn(ctx, todos)
	}

	return m.Summary, m.Err
}

// CallCount returns how many times GenerateSummary was called
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastTodos returns the todos passed to the most recent call, or nil
func (m *MockGenerator) LastTodos() []domain.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}

// NewMockGeneratorWithSummary creates a MockGenerator that returns the given summary
func NewMockGeneratorWithSummary(summary string) *MockGenerator {
	return &MockGenerator{Summary: summary}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{Err: generation.ErrGenerationFailed}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{Err: generation.ErrContentBlocked}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

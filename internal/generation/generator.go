package generation

import (
	"context"
	"fmt"

	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// Generator defines the interface for producing a natural-language summary
// of pending todos with an external language model.
type Generator interface {
	// GenerateSummary sends the todos to the model in a single request and
	// returns the model's text verbatim.
	//
	// Returns an error wrapping ErrGenerationFailed, ErrInvalidResponse or
	// ErrContentBlocked when the call fails.
	GenerateSummary(ctx context.Context, todos []domain.Todo) (string, error)
}

// Result is the outcome of one generation attempt. Exactly one of Text and
// Err is meaningful: Err is nil on success.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the attempt produced a summary.
func (r Result) OK() bool {
	return r.Err == nil
}

// Client is an optional text-generation capability. The zero value is a
// client with no generator configured.
type Client struct {
	generator Generator
}

// NewClient wraps g as an available capability. A nil g yields an
// unconfigured client.
func NewClient(g Generator) Client {
	return Client{generator: g}
}

// Available reports whether a generator is configured.
func (c Client) Available() bool {
	return c.generator != nil
}

// Generate runs the configured generator and converts its outcome into a
// Result. An unconfigured client yields ErrNotConfigured without any call.
func (c Client) Generate(ctx context.Context, todos []domain.Todo) Result {
	if !c.Available() {
		return Result{Err: ErrNotConfigured}
	}

	text, err := c.generator.GenerateSummary(ctx, todos)
	if err != nil {
		return Result{Err: err}
	}
	if text == "" {
		return Result{Err: fmt.Errorf("%w: empty summary", ErrInvalidResponse)}
	}

	return Result{Text: text}
}

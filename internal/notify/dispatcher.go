package notify

import (
	"context"
	"strings"

	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// PlaceholderWebhookURL is the sample value shipped in example env files.
// It is treated the same as an empty URL.
const PlaceholderWebhookURL = "https://hooks.slack.com/services/your/webhook/url"

// Dispatcher delivers a rendered summary to an external destination.
type Dispatcher interface {
	// Send delivers the summary and the list of todos it was built from.
	// Returns an error wrapping ErrDeliveryFailed on transport failure or a
	// non-success response.
	Send(ctx context.Context, summary string, todosText string) error
}

// Result is the outcome of one delivery attempt.
type Result struct {
	Status domain.DeliveryStatus
	Err    error
}

// Attempted reports whether an external call was made.
func (r Result) Attempted() bool {
	return r.Status != domain.DeliveryNotConfigured
}

// Channel is an optional notification capability. The zero value has no
// destination configured.
type Channel struct {
	dispatcher Dispatcher
}

// NewChannel wraps d as a configured channel. A nil d yields an unconfigured channel.
func NewChannel(d Dispatcher) Channel {
	return Channel{dispatcher: d}
}

// Configured reports whether a destination is set.
func (c Channel) Configured() bool {
	return c.dispatcher != nil
}

// Deliver sends the summary and maps the outcome to a delivery status.
// It never returns an error of its own; failures are reported in Result.Err.
func (c Channel) Deliver(ctx context.Context, summary, todosText string) Result {
	if !c.Configured() {
		return Result{Status: domain.DeliveryNotConfigured, Err: ErrNotConfigured}
	}

	if err := c.dispatcher.Send(ctx, summary, todosText); err != nil {
		return Result{Status: domain.DeliveryFailed, Err: err}
	}

	return Result{Status: domain.DeliverySuccess}
}

// IsUsableWebhookURL reports whether url names a real destination, i.e. it
// is neither blank nor the shipped placeholder.
func IsUsableWebhookURL(url string) bool {
	url = strings.TrimSpace(url)
	return url != "" && url != PlaceholderWebhookURL
}

// RenderText builds the single text body that embeds both the summary and
// the todo list under fixed headers.
func RenderText(summary, todosText string) string {
	return "*Todo Summary:*\n" + summary + "\n\n*Pending Todos:*\n" + todosText
}

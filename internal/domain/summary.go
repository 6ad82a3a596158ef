package domain

// DeliveryStatus is the outcome of forwarding a summary to the notification channel.
type DeliveryStatus string

// Possible delivery status values
const (
	// DeliveryNotConfigured means no destination is set, so no attempt was made.
	DeliveryNotConfigured DeliveryStatus = "not_configured"
	// DeliverySuccess means the destination accepted the payload.
	DeliverySuccess DeliveryStatus = "success"
	// DeliveryFailed means an attempt was made and it did not succeed.
	DeliveryFailed DeliveryStatus = "failed"
)

// IsValid reports whether s is one of the known delivery statuses.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryNotConfigured, DeliverySuccess, DeliveryFailed:
		return true
	}
	return false
}

// SummarySource records which path produced the summary text.
type SummarySource string

// Possible summary sources
const (
	SummarySourceLLM      SummarySource = "llm"
	SummarySourceFallback SummarySource = "fallback"
)

// SummaryResult is the transient outcome of one summarization request.
type SummaryResult struct {
	// SummaryText is the text from the generator or the heuristic fallback.
	SummaryText string

	// Source is the path that produced SummaryText.
	Source SummarySource

	// DeliveryStatus is the outcome of the notification attempt.
	DeliveryStatus DeliveryStatus

	// SourceTodosText is the exact rendered list of pending todos that was summarized.
	SourceTodosText string

	// PendingCount is the number of pending todos in the snapshot.
	PendingCount int
}

// NewSummaryResult builds a SummaryResult from a non-empty pending snapshot.
// It returns ErrNoPendingTodos when pending is empty.
func NewSummaryResult(
	pending []Todo,
	text string,
	source SummarySource,
	status DeliveryStatus,
) (*SummaryResult, error) {
	if len(pending) == 0 {
		return nil, ErrNoPendingTodos
	}
	if !status.IsValid() {
		return nil, NewValidationError("delivery_status", "is not a known status", ErrValidation)
	}

	return &SummaryResult{
		SummaryText:     text,
		Source:          source,
		DeliveryStatus:  status,
		SourceTodosText: RenderTodoList(pending),
		PendingCount:    len(pending),
	}, nil
}

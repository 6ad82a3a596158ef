package domain

import (
	"errors"
	"testing"
)

func TestNewSummaryResult(t *testing.T) {
	t.Parallel()

	pending := []Todo{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Book flights"}}

	result, err := NewSummaryResult(pending, "two errands", SummarySourceLLM, DeliverySuccess)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.SourceTodosText != "- Buy milk\n- Book flights" {
		t.Errorf("unexpected source text %q", result.SourceTodosText)
	}
	if result.PendingCount != 2 {
		t.Errorf("Expected pending count 2, got %d", result.PendingCount)
	}
	if result.Source != SummarySourceLLM {
		t.Errorf("Expected source %s, got %s", SummarySourceLLM, result.Source)
	}

	_, err = NewSummaryResult(nil, "nothing", SummarySourceFallback, DeliveryNotConfigured)
	if !errors.Is(err, ErrNoPendingTodos) {
		t.Errorf("Expected error %v, got %v", ErrNoPendingTodos, err)
	}

	_, err = NewSummaryResult(pending, "x", SummarySourceLLM, DeliveryStatus("queued"))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for unknown status, got %v", err)
	}
}

func TestDeliveryStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []DeliveryStatus{DeliveryNotConfigured, DeliverySuccess, DeliveryFailed} {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	if DeliveryStatus("").IsValid() {
		t.Error("Expected empty status to be invalid")
	}
}

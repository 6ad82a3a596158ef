package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// ServiceError wraps unexpected errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_todo", "summarize")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Expected conditions (validation, not found, nothing to summarize) are
// returned unchanged so that callers can match them with errors.Is.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNoPendingTodos) ||
		errors.Is(err, store.ErrNotFound) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-summary-api/internal/api/shared"
	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// An unparseable ID cannot name any todo, so it is reported as not found
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoPendingTodos),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTodoNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return "Todo not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Todo already exists"

	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title is required"

	case errors.Is(err, domain.ErrNoPendingTodos):
		return "No pending todos to summarize"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request format"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// error response. For 5xx responses a non-empty serverMessage replaces the
// generic message.
func HandleAPIError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	serverMessage string,
	opts ...shared.ResponseOption,
) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	if status >= http.StatusInternalServerError && serverMessage != "" {
		message = serverMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

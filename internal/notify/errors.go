package notify

import "errors"

// Common errors returned by the notify package
var (
	// ErrNotConfigured is returned when no notification destination is set.
	ErrNotConfigured = errors.New("notification channel not configured")

	// ErrDeliveryFailed is returned when the destination rejects the payload
	// or cannot be reached.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrInvalidConfig is returned when the dispatcher configuration is invalid
	ErrInvalidConfig = errors.New("invalid dispatcher configuration")
)

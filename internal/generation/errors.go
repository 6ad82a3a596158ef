package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrNotConfigured is returned when no text-generation service is set up,
	// typically because the API credential is missing.
	ErrNotConfigured = errors.New("text generation service not configured")

	// ErrGenerationFailed is returned when summary generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate summary")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

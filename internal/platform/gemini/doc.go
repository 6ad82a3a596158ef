// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for summarizing todo lists.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the summarization pipeline to Google's external Gemini service.
// It translates a list of domain.Todo values into a single GenerateContent
// request and maps the response (or its failure) back onto the sentinel
// errors defined in the generation package:
//
//   - transport or API errors wrap generation.ErrGenerationFailed
//   - safety blocks wrap generation.ErrContentBlocked
//   - missing or empty text wraps generation.ErrInvalidResponse
//
// The package depends on the google.golang.org/genai client library.
package gemini

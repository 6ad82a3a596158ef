// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. It guards against
// leaking webhook URLs, model provider API keys, bearer tokens and stack
// traces that can end up inside error messages from outbound HTTP calls.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder     = "[REDACTED_KEY]"
	RedactedTokenPlaceholder   = "[REDACTED_TOKEN]"
	RedactedWebhookPlaceholder = "[REDACTED_WEBHOOK]"
	RedactedStackPlaceholder   = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; more specific patterns come first so the
// generic key pattern does not split a value another rule would replace whole.
var rules = []rule{
	// Incoming webhook URLs embed their secret in the path.
	{regexp.MustCompile(`https?://hooks\.slack\.com/[^\s"'<>]+`), RedactedWebhookPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]+`), RedactedTokenPlaceholder},
	// OpenAI-style secret keys
	{regexp.MustCompile(`sk-[A-Za-z0-9_\-]{16,}`), RedactedKeyPlaceholder},
	// Google API keys
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

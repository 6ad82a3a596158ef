package generation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// FallbackReason explains why the heuristic summary is used.
type FallbackReason int

const (
	// FallbackNotConfigured means no generator was configured.
	FallbackNotConfigured FallbackReason = iota
	// FallbackGenerationFailed means the generator was called and failed.
	FallbackGenerationFailed
)

// minThemeLength is the length a word must exceed to count as a theme.
const minThemeLength = 3

// Preamble returns the first line of a heuristic summary for this reason.
func (r FallbackReason) Preamble() string {
	if r == FallbackGenerationFailed {
		return "Summary generation failed. Here is a basic summary:"
	}
	return "Text generation service not configured. Here is a basic summary:"
}

// String implements fmt.Stringer.
func (r FallbackReason) String() string {
	if r == FallbackGenerationFailed {
		return "generation_failed"
	}
	return "not_configured"
}

// Themes lower-cases each title, splits it on whitespace and returns every
// word longer than three characters, without duplicates, in first-seen order.
func Themes(todos []domain.Todo) []string {
	seen := make(map[string]struct{})
	themes := make([]string, 0)

	for _, t := range todos {
		for _, word := range strings.Fields(strings.ToLower(t.Title)) {
			if utf8.RuneCountInString(word) <= minThemeLength {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			themes = append(themes, word)
		}
	}

	return themes
}

// HeuristicSummary builds a deterministic summary from keyword frequency
// alone. It never fails; callers pass a non-empty list of pending todos.
func HeuristicSummary(reason FallbackReason, todos []domain.Todo) string {
	var b strings.Builder
	b.WriteString(reason.Preamble())
	b.WriteString("\nMain themes: ")
	b.WriteString(strings.Join(Themes(todos), ", "))
	fmt.Fprintf(&b, "\nNumber of pending todos: %d", len(todos))
	return b.String()
}

package generation

import (
	"github.com/phrazzld/todo-summary-api/internal/domain"
)

// SystemInstruction is sent as the system message of every summary request.
const SystemInstruction = "You are a helpful assistant that generates concise summaries of todo lists. " +
	"Focus on the main themes and priorities. Keep it brief."

// UserPrompt renders the user message for the given todos: one "- title"
// line per todo, in the order given.
func UserPrompt(todos []domain.Todo) string {
	return "Here are the todos:\n" +
		domain.RenderTodoList(todos) +
		"\nPlease provide a concise summary of these todos. Focus on the main themes and priorities. Keep it brief."
}

package api

import "github.com/phrazzld/todo-summary-api/internal/domain"

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title string `json:"title" validate:"required"`
}

// TodoResponse represents the response data for a todo
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// MessageResponse is a response carrying only a human-readable message
type MessageResponse struct {
	Message string `json:"message"`
}

// SummaryResponse represents the response data for POST /api/summarize
type SummaryResponse struct {
	Summary     string `json:"summary"`
	SlackStatus string `json:"slackStatus"`
	Todos       string `json:"todos"`
	Source      string `json:"source"`
}

// RequestExample describes how to call an endpoint
type RequestExample struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Body   string `json:"body"`
}

// UsageResponse points callers at the right way to use an endpoint
type UsageResponse struct {
	Message string         `json:"message"`
	Example RequestExample `json:"example"`
}

// WelcomeResponse is returned from the API root
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// todoToResponse converts a domain.Todo to a TodoResponse
func todoToResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
	}
}

// todosToResponse converts todos to responses; the result is never nil so
// that an empty list encodes as [].
func todosToResponse(todos []domain.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, todoToResponse(todo))
	}
	return responses
}

// summaryToResponse converts a domain.SummaryResult to a SummaryResponse
func summaryToResponse(result *domain.SummaryResult) SummaryResponse {
	return SummaryResponse{
		Summary:     result.SummaryText,
		SlackStatus: string(result.DeliveryStatus),
		Todos:       result.SourceTodosText,
		Source:      string(result.Source),
	}
}

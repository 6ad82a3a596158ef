package api

import (
	"net/http"

	"github.com/phrazzld/todo-summary-api/internal/api/shared"
)

// Welcome handles GET / requests
func Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message: "Welcome to Todo Summary Assistant",
		Endpoints: map[string]string{
			"/api/todos":     "GET/POST - Manage todos",
			"/api/todos/:id": "DELETE - Delete a todo",
			"/api/summarize": "POST - Generate summary of todos",
		},
	})
}

// Health handles GET /health requests
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// NotFound writes a JSON 404 for unknown routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
}

// MethodNotAllowed writes a JSON 405 for known routes hit with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/todo-summary-api/internal/api"
	apiMiddleware "github.com/phrazzld/todo-summary-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	todoHandler := api.NewTodoHandler(app.todoService, app.logger)
	summaryHandler := api.NewSummaryHandler(app.summaryService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)

		r.Post("/summarize", summaryHandler.Summarize)
		r.Get("/summarize", summaryHandler.SummarizeUsage)

		r.NotFound(api.NotFound)
		r.MethodNotAllowed(api.MethodNotAllowed)
	})

	r.Get("/health", api.Health)
	r.MethodNotAllowed(api.MethodNotAllowed)

	// A built UI takes over everything outside /api, including the root
	if dir := app.config.Server.StaticDir; dir != "" {
		app.logger.Info("Serving static files", "dir", dir)
		r.NotFound(spaHandler(dir))
	} else {
		r.Get("/", api.Welcome)
		r.NotFound(api.NotFound)
	}

	return r
}

// spaHandler serves files from dir and falls back to dir/index.html for
// paths that do not name a file, so client-side routes resolve.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			api.NotFound(w, r)
			return
		}

		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		if _, err := os.Stat(index); err != nil {
			if r.URL.Path == "/" {
				api.Welcome(w, r)
				return
			}
			api.NotFound(w, r)
			return
		}

		// Unknown asset paths keep a 404 so broken links stay visible
		if strings.Contains(filepath.Base(r.URL.Path), ".") {
			api.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, index)
	}
}

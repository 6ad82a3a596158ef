package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-summary-api/internal/api/shared"
	"github.com/phrazzld/todo-summary-api/internal/service"
)

// SummaryHandler handles summary-related HTTP requests
type SummaryHandler struct {
	summaryService service.SummaryService
	logger         *slog.Logger
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService service.SummaryService, logger *slog.Logger) *SummaryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SummaryHandler")
	}

	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger.With(slog.String("component", "summary_handler")),
	}
}

// Summarize handles POST /api/summarize requests.
// Once a todo is pending it answers 200 whatever the state of the external
// services; delivery problems show up only in slackStatus.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	result, err := h.summaryService.Summarize(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate summary", shared.WithDetails())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaryToResponse(result))
}

// SummarizeUsage handles GET /api/summarize requests
func (h *SummaryHandler) SummarizeUsage(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, UsageResponse{
		Message: "Please use POST method to generate summary",
		Example: RequestExample{
			Method: http.MethodPost,
			URL:    "/api/summarize",
			Body:   "{}",
		},
	})
}

package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-summary-api/internal/domain"
	"github.com/phrazzld/todo-summary-api/internal/generation"
	"github.com/phrazzld/todo-summary-api/internal/notify"
	"github.com/phrazzld/todo-summary-api/internal/platform/logger"
	"github.com/phrazzld/todo-summary-api/internal/redact"
	"github.com/phrazzld/todo-summary-api/internal/store"
)

// SummaryService produces summaries of pending todos
type SummaryService interface {
	// Summarize snapshots the pending todos, summarizes them and forwards the
	// summary to the notification channel.
	//
	// Returns domain.ErrNoPendingTodos, before any external call, when no
	// todo is pending. Generation and delivery failures never fail the call:
	// the former fall back to the heuristic summary and the latter are
	// reported in SummaryResult.DeliveryStatus.
	Summarize(ctx context.Context) (*domain.SummaryResult, error)
}

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	todoStore store.TodoStore
	generator generation.Client
	channel   notify.Channel
	logger    *slog.Logger
}

// NewSummaryService creates a new SummaryService.
// The zero generation.Client and notify.Channel are valid and mean that the
// respective capability is not configured.
func NewSummaryService(
	todoStore store.TodoStore,
	generator generation.Client,
	channel notify.Channel,
	logger *slog.Logger,
) (SummaryService, error) {
	if todoStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "todoStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &summaryServiceImpl{
		todoStore: todoStore,
		generator: generator,
		channel:   channel,
		logger:    logger.With("component", "summary_service"),
	}, nil
}

// Summarize implements SummaryService
func (s *summaryServiceImpl) Summarize(ctx context.Context) (*domain.SummaryResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// 1. Snapshot pending todos; the store lock is not held past this call
	pending, err := s.todoStore.ListByCompletion(ctx, false)
	if err != nil {
		log.Error("failed to read pending todos", slog.String("error", redact.Error(err)))
		return nil, NewServiceError("summarize", "failed to read pending todos", err)
	}
	if len(pending) == 0 {
		return nil, domain.ErrNoPendingTodos
	}

	// 2. Render the list that is fed into summarization and delivery
	todosText := domain.RenderTodoList(pending)

	// 3. Generate, falling back to the heuristic
	text, source := s.generate(ctx, log, pending)

	// 4. Deliver; the outcome is reported, not enforced
	delivery := s.channel.Deliver(ctx, text, todosText)
	if delivery.Status == domain.DeliveryFailed {
		log.Warn("summary delivery failed",
			slog.String("error", redact.Error(delivery.Err)))
	}

	result, err := domain.NewSummaryResult(pending, text, source, delivery.Status)
	if err != nil {
		return nil, NewServiceError("summarize", "failed to build summary result", err)
	}

	log.Info("summary generated",
		slog.String("source", string(result.Source)),
		slog.String("delivery_status", string(result.DeliveryStatus)),
		slog.Int("pending_count", result.PendingCount))

	return result, nil
}

// generate returns the summary text and the path that produced it.
func (s *summaryServiceImpl) generate(
	ctx context.Context,
	log *slog.Logger,
	pending []domain.Todo,
) (string, domain.SummarySource) {
	if !s.generator.Available() {
		return generation.HeuristicSummary(generation.FallbackNotConfigured, pending),
			domain.SummarySourceFallback
	}

	result := s.generator.Generate(ctx, pending)
	if !result.OK() {
		log.Warn("summary generation failed, using heuristic summary",
			slog.String("error", redact.Error(result.Err)))
		return generation.HeuristicSummary(generation.FallbackGenerationFailed, pending),
			domain.SummarySourceFallback
	}

	return result.Text, domain.SummarySourceLLM
}

package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/phrazzld/todo-summary-api/internal/config"
	"github.com/phrazzld/todo-summary-api/internal/notify"
)

// DefaultTimeout bounds a webhook call when none is configured.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response body is kept for logging.
const maxErrorBody = 512

// payload is the JSON body accepted by Slack incoming webhooks.
type payload struct {
	Text string `json:"text"`
}

// WebhookDispatcher posts summaries to a Slack incoming webhook.
type WebhookDispatcher struct {
	logger     *slog.Logger
	httpClient *http.Client
	url        string
}

var _ notify.Dispatcher = (*WebhookDispatcher)(nil)

// NewWebhookDispatcher creates a dispatcher for the configured webhook URL.
//
// Returns an error wrapping notify.ErrInvalidConfig if the URL is blank or the
// shipped placeholder.
func NewWebhookDispatcher(logger *slog.Logger, cfg config.NotifyConfig) (*WebhookDispatcher, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if !notify.IsUsableWebhookURL(cfg.SlackWebhookURL) {
		return nil, fmt.Errorf("%w: slack webhook URL is not set", notify.ErrInvalidConfig)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &WebhookDispatcher{
		logger:     logger.With(slog.String("component", "slack_dispatcher")),
		httpClient: client,
		url:        cfg.SlackWebhookURL,
	}, nil
}

// Send implements notify.Dispatcher. Any non-2xx response is a failure.
func (d *WebhookDispatcher) Send(ctx context.Context, summary string, todosText string) error {
	body, err := json.Marshal(payload{Text: notify.RenderText(summary, todosText)})
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %w", notify.ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %w", notify.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", notify.ErrDeliveryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		d.logger.WarnContext(ctx, "slack webhook rejected payload",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response", string(snippet)))
		return fmt.Errorf("%w: unexpected status %d", notify.ErrDeliveryFailed, resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	d.logger.InfoContext(ctx, "summary delivered to slack",
		slog.Int("status_code", resp.StatusCode))
	return nil
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const webhookTimeout = 10 * time.Second

// WebhookSink POSTs events as JSON to a configured URL.
type WebhookSink struct {
	url    string
	client *http.Client
}

func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

func (s *WebhookSink) Send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NoopSink discards events. Used when no webhook URL is configured.
type NoopSink struct{}

func (NoopSink) Send(ctx context.Context, event Event) error { return nil }

// Notifier wraps a Sink and swallows delivery failures, logging them
// instead. Callers fire events after persisting state and never treat
// delivery failure as an error.
type Notifier struct {
	sink Sink
	log  zerolog.Logger
}

func NewNotifier(sink Sink, log zerolog.Logger) *Notifier {
	return &Notifier{sink: sink, log: log}
}

func (n *Notifier) Notify(ctx context.Context, event Event) {
	if err := n.sink.Send(ctx, event); err != nil {
		n.log.Warn().
			Err(err).
			Str("event_type", string(event.Type)).
			Msg("notification delivery failed")
	}
}

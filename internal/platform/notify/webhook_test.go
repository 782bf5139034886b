package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestWebhookSink_PostsEventJSON(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL)
	err := sink.Send(context.Background(), Event{
		Type:    EventNewBooking,
		Payload: map[string]string{"id": "abc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}

	var decoded struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if decoded.Type != "NEW_BOOKING" {
		t.Fatalf("unexpected type %q", decoded.Type)
	}
	if decoded.Payload["id"] != "abc" {
		t.Fatalf("unexpected payload %v", decoded.Payload)
	}
}

func TestWebhookSink_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL)
	if err := sink.Send(context.Background(), Event{Type: EventStatusUpdate}); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestWebhookSink_UnreachableHost(t *testing.T) {
	sink := NewWebhookSink("http://127.0.0.1:1")
	if err := sink.Send(context.Background(), Event{Type: EventStatusUpdate}); err == nil {
		t.Fatal("expected error for unreachable host")
	}
}

type failingSink struct{ calls int }

func (f *failingSink) Send(ctx context.Context, event Event) error {
	f.calls++
	return errors.New("down")
}

func TestNotifier_SwallowsSinkFailure(t *testing.T) {
	sink := &failingSink{}
	n := NewNotifier(sink, zerolog.Nop())

	n.Notify(context.Background(), Event{Type: EventRescheduleProposed})

	if sink.calls != 1 {
		t.Fatalf("expected one delivery attempt, got %d", sink.calls)
	}
}

func TestNoopSink(t *testing.T) {
	if err := (NoopSink{}).Send(context.Background(), Event{Type: EventNewBooking}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

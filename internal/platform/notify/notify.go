// Package notify delivers appointment lifecycle events to an external
// webhook. Delivery is best effort: persistence never depends on it.
package notify

import "context"

// EventType identifies the lifecycle transition that produced an event.
type EventType string

const (
	EventNewBooking          EventType = "NEW_BOOKING"
	EventStatusUpdate        EventType = "STATUS_UPDATE"
	EventRescheduleProposed  EventType = "RESCHEDULE_PROPOSED"
	EventRescheduleConfirmed EventType = "RESCHEDULE_CONFIRMED"
)

// Event is a single notification to be delivered.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
}

// Sink delivers events to their destination.
type Sink interface {
	Send(ctx context.Context, event Event) error
}

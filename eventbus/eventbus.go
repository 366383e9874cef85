package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is the payload written to the bus.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewJSONEvent wraps the payload into an Event with a fresh id.
func NewJSONEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Payload:    data,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Bus publishes domain events for downstream consumers (analytics,
// notifications). Publishing is best effort from the caller's point of
// view: request handling never fails because the bus is down.
type Bus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

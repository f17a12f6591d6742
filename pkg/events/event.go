package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TypeSubscriptionUpdated is published by billing whenever a user's plan or subscription status changes
const TypeSubscriptionUpdated = "SUBSCRIPTION_UPDATED"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the event code, or the subject it arrived on.
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// UserID reads the "user_id" field of an event payload
func UserID(e Event) (uuid.UUID, error) {
	raw, ok := e.Payload()["user_id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("event %s has no user_id", e.EventType())
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("event %s has non-string user_id", e.EventType())
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("event %s has invalid user_id: %w", e.EventType(), err)
	}
	return id, nil
}

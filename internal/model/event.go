package model

import (
	"time"

	"github.com/google/uuid"
)

const EventSubscriptionRequested = "subscription.requested"

// SubscriptionEvent is the payload published once a registration attempt completes.
type SubscriptionEvent struct {
	EventType    string    `json:"event_type"`
	SubscriberID uuid.UUID `json:"subscriber_id"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

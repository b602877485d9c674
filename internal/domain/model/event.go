package model

import "time"

// Event topics published to the broker. Advisory only: consumers that miss
// an event must converge through explicit reads.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
	TopicMessageCreated     = "message.created"
)

// Event is an outbox row recorded in the same transaction as the domain
// mutation it announces and published asynchronously afterwards.
type Event struct {
	ID          string
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

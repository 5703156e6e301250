package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// OutboxEvent is the persistence shape of a domain event awaiting delivery.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
}

// OutboxRepository defines the interface for the transactional outbox.
// Events ride in the same commit plan as the write that produced them, so
// cache invalidation signals are never lost.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event.
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata.
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent
}

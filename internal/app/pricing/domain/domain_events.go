package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// PriceEntryUpsertedEvent is emitted when a book entry is created or changed.
// Consumers use it to invalidate any external price cache.
type PriceEntryUpsertedEvent struct {
	BookID    string          `json:"bookId"`
	ProductID string          `json:"productId"`
	OldPrice  *decimal.Decimal `json:"oldPrice,omitempty"`
	NewPrice  decimal.Decimal `json:"newPrice"`
	ChangedAt time.Time       `json:"changedAt"`
}

func (e *PriceEntryUpsertedEvent) EventType() string {
	return "price_entry.upserted"
}

func (e *PriceEntryUpsertedEvent) AggregateID() string {
	return e.BookID + "/" + e.ProductID
}

// PriceEntryDeletedEvent is emitted when a book entry is removed.
type PriceEntryDeletedEvent struct {
	BookID    string    `json:"bookId"`
	ProductID string    `json:"productId"`
	ChangedAt time.Time `json:"changedAt"`
}

func (e *PriceEntryDeletedEvent) EventType() string {
	return "price_entry.deleted"
}

func (e *PriceEntryDeletedEvent) AggregateID() string {
	return e.BookID + "/" + e.ProductID
}

// ConflictResolvedEvent is emitted after a resolution strategy ran.
type ConflictResolvedEvent struct {
	ProductID     string             `json:"productId"`
	Strategy      ResolutionStrategy `json:"strategy"`
	AffectedCount int                `json:"affectedCount"`
	NewPrice      decimal.Decimal    `json:"newPrice"`
	ResolvedAt    time.Time          `json:"resolvedAt"`
}

func (e *ConflictResolvedEvent) EventType() string {
	return "price_conflict.resolved"
}

func (e *ConflictResolvedEvent) AggregateID() string {
	return e.ProductID
}

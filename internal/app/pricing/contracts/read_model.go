package contracts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// MasterEntryDTO is one product row of the master book.
type MasterEntryDTO struct {
	ProductID   string
	MasterPrice decimal.Decimal
}

// CatalogReadModel serves the listing reads behind the smart view: which
// products carry a master price, and which zones/segments exist.
type CatalogReadModel interface {
	ListMasterEntries(ctx context.Context) ([]MasterEntryDTO, error)
	ListActiveZones(ctx context.Context) ([]domain.GeoZone, error)
	ListSegments(ctx context.Context) ([]domain.UserSegment, error)
}

// EventDTO is one outbox event as exposed over the read API.
type EventDTO struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// EventFilter narrows an event listing.
type EventFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int64
}

// EventsReadModel serves outbox event listings for operators.
type EventsReadModel interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]EventDTO, int64, error)
}

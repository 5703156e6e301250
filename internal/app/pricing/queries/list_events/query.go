package list_events

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
)

// Request contains filtering parameters for listing outbox events.
type Request struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int64
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a page of events plus the total matching count.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.EventDTO, int64, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	return q.readModel.ListEvents(ctx, contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       limit,
	})
}

package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/models/m_outbox"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// EventsReadModel implements the outbox event listing for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) contracts.EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEvents retrieves outbox events matching the filter, most recent first,
// plus the total count of matching rows ignoring the limit.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]contracts.EventDTO, int64, error) {
	base := query.From(m_outbox.TableName)
	if filter.EventType != "" {
		base = base.Where(query.Eq(m_outbox.EventType, filter.EventType))
	}
	if filter.AggregateID != "" {
		base = base.Where(query.Eq(m_outbox.AggregateID, filter.AggregateID))
	}
	if filter.Status != "" {
		base = base.Where(query.Eq(m_outbox.Status, filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	stmt := base.
		Select(
			m_outbox.EventID,
			m_outbox.EventType,
			m_outbox.AggregateID,
			m_outbox.Payload,
			m_outbox.Status,
			m_outbox.CreatedAt,
			m_outbox.ProcessedAt,
		).
		OrderBy(m_outbox.CreatedAt, query.Desc).
		Limit(limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []contracts.EventDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data struct {
			EventID     string           `spanner:"event_id"`
			EventType   string           `spanner:"event_type"`
			AggregateID string           `spanner:"aggregate_id"`
			Payload     spanner.NullJSON `spanner:"payload"`
			Status      string           `spanner:"status"`
			CreatedAt   spanner.NullTime `spanner:"created_at"`
			ProcessedAt spanner.NullTime `spanner:"processed_at"`
		}
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}

		dto := contracts.EventDTO{
			EventID:     data.EventID,
			EventType:   data.EventType,
			AggregateID: data.AggregateID,
			Status:      data.Status,
			CreatedAt:   data.CreatedAt.Time,
		}
		if data.Payload.Valid {
			dto.Payload = data.Payload.String()
		}
		if data.ProcessedAt.Valid {
			t := data.ProcessedAt.Time
			dto.ProcessedAt = &t
		}
		events = append(events, dto)
	}

	total, err := r.countEvents(ctx, base)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *EventsReadModel) countEvents(ctx context.Context, base *query.Builder) (int64, error) {
	iter := r.client.Single().Query(ctx, base.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to scan event count: %w", err)
	}
	return count, nil
}

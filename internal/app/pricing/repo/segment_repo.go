package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_segment"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// SegmentRepo implements SegmentRepository for Spanner.
type SegmentRepo struct {
	client *spanner.Client
}

// NewSegmentRepo creates a new SegmentRepo.
func NewSegmentRepo(client *spanner.Client) contracts.SegmentRepository {
	return &SegmentRepo{client: client}
}

var segmentColumns = []string{
	m_segment.SegmentID,
	m_segment.Name,
	m_segment.Priority,
	m_segment.PricingTier,
	m_segment.IsDefault,
	m_segment.IsSystem,
}

// GetByID retrieves a segment by id.
func (r *SegmentRepo) GetByID(ctx context.Context, segmentID string) (*domain.UserSegment, error) {
	row, err := r.client.Single().ReadRow(ctx, m_segment.TableName, spanner.Key{segmentID}, segmentColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("failed to read segment: %w", err)
	}

	var data m_segment.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse segment: %w", err)
	}
	seg := dataToSegment(&data)
	return &seg, nil
}

// List returns all segments ordered by priority ascending.
func (r *SegmentRepo) List(ctx context.Context) ([]domain.UserSegment, error) {
	stmt := query.From(m_segment.TableName).
		Select(segmentColumns...).
		OrderBy(m_segment.Priority, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var segments []domain.UserSegment
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list segments: %w", err)
		}

		var data m_segment.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse segment: %w", err)
		}
		segments = append(segments, dataToSegment(&data))
	}
	return segments, nil
}

func dataToSegment(data *m_segment.Data) domain.UserSegment {
	return domain.UserSegment{
		ID:          data.SegmentID,
		Name:        data.Name,
		Priority:    data.Priority,
		PricingTier: data.PricingTier,
		IsDefault:   data.IsDefault,
		IsSystem:    data.IsSystem,
	}
}

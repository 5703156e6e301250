package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// SegmentRepository defines the interface for user segment reads.
type SegmentRepository interface {
	// GetByID retrieves a segment. Returns domain.ErrSegmentNotFound when
	// absent.
	GetByID(ctx context.Context, segmentID string) (*domain.UserSegment, error)

	// List returns all segments, ordered by priority.
	List(ctx context.Context) ([]domain.UserSegment, error)
}

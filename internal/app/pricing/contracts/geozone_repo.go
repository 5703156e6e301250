package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// GeoZoneRepository defines the interface for geo zone reads.
type GeoZoneRepository interface {
	// MatchPostalCode returns every (zone, range) whose mapping contains
	// the numeric postal code, joined to the zone record. Ordering is the
	// domain's job (SortHierarchy); the repository only gathers matches.
	MatchPostalCode(ctx context.Context, code int64) ([]domain.ZoneMatch, error)

	// GetZone retrieves a zone by id. Returns domain.ErrZoneNotFound when
	// absent.
	GetZone(ctx context.Context, zoneID string) (*domain.GeoZone, error)
}

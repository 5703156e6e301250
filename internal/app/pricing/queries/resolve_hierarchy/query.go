package resolve_hierarchy

import (
	"context"
	"strconv"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Request contains the postal code to resolve.
type Request struct {
	PostalCode string
}

// Query handles the geo zone hierarchy resolution use case.
type Query struct {
	zones contracts.GeoZoneRepository
}

// NewQuery creates a new resolve hierarchy query.
func NewQuery(zones contracts.GeoZoneRepository) *Query {
	return &Query{zones: zones}
}

// Execute returns the zones covering the postal code, most specific first.
// A code matching nothing — including one that is not numeric — yields an
// empty hierarchy; callers fall back to the master price.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.GeoZone, error) {
	code, err := strconv.ParseInt(req.PostalCode, 10, 64)
	if err != nil {
		return []domain.GeoZone{}, nil
	}

	matches, err := q.zones.MatchPostalCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return domain.SortHierarchy(matches), nil
}

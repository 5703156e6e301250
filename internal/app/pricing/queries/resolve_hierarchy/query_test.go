package resolve_hierarchy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

type fakeZones struct {
	matches []domain.ZoneMatch
	queried []int64
}

func (f *fakeZones) MatchPostalCode(ctx context.Context, code int64) ([]domain.ZoneMatch, error) {
	f.queried = append(f.queried, code)
	return f.matches, nil
}

func (f *fakeZones) GetZone(ctx context.Context, zoneID string) (*domain.GeoZone, error) {
	return nil, domain.ErrZoneNotFound
}

func TestResolveHierarchy(t *testing.T) {
	ctx := context.Background()

	t.Run("matches come back most specific first", func(t *testing.T) {
		zones := &fakeZones{matches: []domain.ZoneMatch{
			{Zone: domain.GeoZone{ID: "zone-in", Level: "country", IsActive: true}, RangeSize: 900000},
			{Zone: domain.GeoZone{ID: "zone-blr", Level: "city", IsActive: true}, RangeSize: 100},
			{Zone: domain.GeoZone{ID: "zone-ka", Level: "state", IsActive: true}, RangeSize: 40000},
		}}
		q := NewQuery(zones)

		result, err := q.Execute(ctx, &Request{PostalCode: "560034"})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, "zone-blr", result[0].ID)
		assert.Equal(t, "zone-ka", result[1].ID)
		assert.Equal(t, "zone-in", result[2].ID)
		assert.Equal(t, []int64{560034}, zones.queried)
	})

	t.Run("non-numeric postal code resolves to an empty hierarchy", func(t *testing.T) {
		zones := &fakeZones{}
		q := NewQuery(zones)

		result, err := q.Execute(ctx, &Request{PostalCode: "SW1A 1AA"})
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Empty(t, zones.queried, "no lookup for a code that cannot be parsed")
	})

	t.Run("unmatched code yields an empty hierarchy, not an error", func(t *testing.T) {
		q := NewQuery(&fakeZones{})

		result, err := q.Execute(ctx, &Request{PostalCode: "999999"})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

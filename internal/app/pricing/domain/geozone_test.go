package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificityRank(t *testing.T) {
	assert.Equal(t, 1, SpecificityRank("zip"))
	assert.Equal(t, 6, SpecificityRank("country"))
	assert.Equal(t, 7, SpecificityRank("continent"))
	assert.Equal(t, 7, SpecificityRank(""))
}

func TestSortHierarchy(t *testing.T) {
	t.Run("orders by level rank most specific first", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "country", Level: "country", IsActive: true}, RangeSize: 900000},
			{Zone: GeoZone{ID: "city", Level: "city", IsActive: true}, RangeSize: 100},
			{Zone: GeoZone{ID: "state", Level: "state", IsActive: true}, RangeSize: 40000},
		}

		zones := SortHierarchy(matches)
		require.Len(t, zones, 3)
		assert.Equal(t, "city", zones[0].ID)
		assert.Equal(t, "state", zones[1].ID)
		assert.Equal(t, "country", zones[2].ID)
	})

	t.Run("narrower range wins at equal level", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "wide", Level: "city", IsActive: true}, RangeSize: 500},
			{Zone: GeoZone{ID: "narrow", Level: "city", IsActive: true}, RangeSize: 10},
		}

		zones := SortHierarchy(matches)
		assert.Equal(t, "narrow", zones[0].ID)
		assert.Equal(t, "wide", zones[1].ID)
	})

	t.Run("higher priority wins at equal level and range", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "low", Level: "city", Priority: 1, IsActive: true}, RangeSize: 100},
			{Zone: GeoZone{ID: "high", Level: "city", Priority: 9, IsActive: true}, RangeSize: 100},
		}

		zones := SortHierarchy(matches)
		assert.Equal(t, "high", zones[0].ID)
	})

	t.Run("fully equal keys keep input order", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "first", Level: "city", Priority: 5, IsActive: true}, RangeSize: 100},
			{Zone: GeoZone{ID: "second", Level: "city", Priority: 5, IsActive: true}, RangeSize: 100},
		}

		zones := SortHierarchy(matches)
		assert.Equal(t, "first", zones[0].ID)
		assert.Equal(t, "second", zones[1].ID)
	})

	t.Run("unranked levels sort after all known levels", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "odd", Level: "galaxy", IsActive: true}, RangeSize: 1},
			{Zone: GeoZone{ID: "country", Level: "country", IsActive: true}, RangeSize: 900000},
		}

		zones := SortHierarchy(matches)
		assert.Equal(t, "country", zones[0].ID)
		assert.Equal(t, "odd", zones[1].ID)
	})

	t.Run("drops inactive zones", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "dead", Level: "city", IsActive: false}, RangeSize: 10},
			{Zone: GeoZone{ID: "live", Level: "state", IsActive: true}, RangeSize: 40000},
		}

		zones := SortHierarchy(matches)
		require.Len(t, zones, 1)
		assert.Equal(t, "live", zones[0].ID)
	})

	t.Run("zone matched through several mappings appears once, by narrowest", func(t *testing.T) {
		matches := []ZoneMatch{
			{Zone: GeoZone{ID: "other", Level: "city", IsActive: true}, RangeSize: 50},
			{Zone: GeoZone{ID: "dup", Level: "city", IsActive: true}, RangeSize: 500},
			{Zone: GeoZone{ID: "dup", Level: "city", IsActive: true}, RangeSize: 10},
		}

		zones := SortHierarchy(matches)
		require.Len(t, zones, 2)
		// The 10-wide match ranks "dup" ahead of "other"'s 50-wide match.
		assert.Equal(t, "dup", zones[0].ID)
		assert.Equal(t, "other", zones[1].ID)
	})

	t.Run("no matches yields an empty hierarchy", func(t *testing.T) {
		assert.Empty(t, SortHierarchy(nil))
	})
}

func TestGeoZoneMapping(t *testing.T) {
	m := GeoZoneMapping{RangeStart: 560001, RangeEnd: 560100}

	assert.True(t, m.Contains(560001))
	assert.True(t, m.Contains(560100))
	assert.False(t, m.Contains(560000))
	assert.False(t, m.Contains(560101))
	assert.Equal(t, int64(100), m.RangeSize())
}

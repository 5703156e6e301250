package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_geo_zone"
)

// GeoZoneRepo implements GeoZoneRepository for Spanner.
type GeoZoneRepo struct {
	client *spanner.Client
}

// NewGeoZoneRepo creates a new GeoZoneRepo.
func NewGeoZoneRepo(client *spanner.Client) contracts.GeoZoneRepository {
	return &GeoZoneRepo{client: client}
}

// MatchPostalCode returns every active zone whose mapping range contains the
// code, with the size of the matched range. A zone reached through several
// mappings appears once per mapping; deduplication is the domain's job.
func (r *GeoZoneRepo) MatchPostalCode(ctx context.Context, code int64) ([]domain.ZoneMatch, error) {
	stmt := spanner.Statement{
		SQL: `
			SELECT
				z.zone_id, z.name, z.level, z.priority, z.is_active,
				m.range_end - m.range_start + 1 AS range_size
			FROM geo_zone_mappings m
			JOIN geo_zones z ON m.zone_id = z.zone_id
			WHERE m.range_start <= @code AND m.range_end >= @code
		`,
		Params: map[string]interface{}{
			"code": code,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var matches []domain.ZoneMatch
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to match postal code: %w", err)
		}

		var joined struct {
			ZoneID    string `spanner:"zone_id"`
			Name      string `spanner:"name"`
			Level     string `spanner:"level"`
			Priority  int64  `spanner:"priority"`
			IsActive  bool   `spanner:"is_active"`
			RangeSize int64  `spanner:"range_size"`
		}
		if err := row.ToStruct(&joined); err != nil {
			return nil, fmt.Errorf("failed to parse zone match: %w", err)
		}

		matches = append(matches, domain.ZoneMatch{
			Zone: domain.GeoZone{
				ID:       joined.ZoneID,
				Name:     joined.Name,
				Level:    joined.Level,
				Priority: joined.Priority,
				IsActive: joined.IsActive,
			},
			RangeSize: joined.RangeSize,
		})
	}
	return matches, nil
}

// GetZone retrieves a zone by id.
func (r *GeoZoneRepo) GetZone(ctx context.Context, zoneID string) (*domain.GeoZone, error) {
	row, err := r.client.Single().ReadRow(ctx, m_geo_zone.TableName, spanner.Key{zoneID}, []string{
		m_geo_zone.ZoneID,
		m_geo_zone.Name,
		m_geo_zone.Level,
		m_geo_zone.Priority,
		m_geo_zone.IsActive,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrZoneNotFound
		}
		return nil, fmt.Errorf("failed to read geo zone: %w", err)
	}

	var data m_geo_zone.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse geo zone: %w", err)
	}
	return &domain.GeoZone{
		ID:       data.ZoneID,
		Name:     data.Name,
		Level:    data.Level,
		Priority: data.Priority,
		IsActive: data.IsActive,
	}, nil
}

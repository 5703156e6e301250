package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_geo_zone"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// CatalogReadModel implements the catalog listing reads behind the smart
// view.
type CatalogReadModel struct {
	client   *spanner.Client
	segments contracts.SegmentRepository
}

// NewCatalogReadModel creates a new CatalogReadModel.
func NewCatalogReadModel(client *spanner.Client) *CatalogReadModel {
	return &CatalogReadModel{
		client:   client,
		segments: NewSegmentRepo(client),
	}
}

// ListMasterEntries returns every product priced in the active master book.
func (r *CatalogReadModel) ListMasterEntries(ctx context.Context) ([]contracts.MasterEntryDTO, error) {
	stmt := spanner.Statement{
		SQL: `
			SELECT e.product_id, e.base_price
			FROM price_book_entries e
			JOIN price_books b ON e.book_id = b.book_id
			WHERE b.is_master = TRUE AND b.is_active = TRUE
			ORDER BY e.product_id
		`,
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var entries []contracts.MasterEntryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list master entries: %w", err)
		}

		var joined struct {
			ProductID string              `spanner:"product_id"`
			BasePrice spanner.NullNumeric `spanner:"base_price"`
		}
		if err := row.ToStruct(&joined); err != nil {
			return nil, fmt.Errorf("failed to parse master entry: %w", err)
		}
		entries = append(entries, contracts.MasterEntryDTO{
			ProductID:   joined.ProductID,
			MasterPrice: ratToDecimal(&joined.BasePrice.Numeric),
		})
	}
	return entries, nil
}

// ListActiveZones returns all active zones ordered by specificity level
// then priority.
func (r *CatalogReadModel) ListActiveZones(ctx context.Context) ([]domain.GeoZone, error) {
	stmt := query.From(m_geo_zone.TableName).
		Select(
			m_geo_zone.ZoneID,
			m_geo_zone.Name,
			m_geo_zone.Level,
			m_geo_zone.Priority,
			m_geo_zone.IsActive,
		).
		Where(query.Eq(m_geo_zone.IsActive, true)).
		OrderBy(m_geo_zone.ZoneID, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var zones []domain.GeoZone
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list zones: %w", err)
		}

		var data m_geo_zone.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse zone: %w", err)
		}
		zones = append(zones, domain.GeoZone{
			ID:       data.ZoneID,
			Name:     data.Name,
			Level:    data.Level,
			Priority: data.Priority,
			IsActive: data.IsActive,
		})
	}
	return zones, nil
}

// ListSegments returns all segments ordered by priority.
func (r *CatalogReadModel) ListSegments(ctx context.Context) ([]domain.UserSegment, error) {
	return r.segments.List(ctx)
}

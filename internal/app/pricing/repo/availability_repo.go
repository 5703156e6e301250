package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_availability"
)

// AvailabilityRepo implements AvailabilityRepository for Spanner.
type AvailabilityRepo struct {
	client *spanner.Client
}

// NewAvailabilityRepo creates a new AvailabilityRepo.
func NewAvailabilityRepo(client *spanner.Client) contracts.AvailabilityRepository {
	return &AvailabilityRepo{client: client}
}

// Get returns the availability record for (product, zone), or (nil, nil)
// when no record exists.
func (r *AvailabilityRepo) Get(ctx context.Context, productID, zoneID string) (*domain.ProductAvailability, error) {
	row, err := r.client.Single().ReadRow(ctx, m_availability.TableName, spanner.Key{productID, zoneID}, []string{
		m_availability.ProductID,
		m_availability.ZoneID,
		m_availability.IsSellable,
		m_availability.Reason,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read availability: %w", err)
	}

	var data m_availability.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse availability: %w", err)
	}
	return &domain.ProductAvailability{
		ProductID:  data.ProductID,
		ZoneID:     data.ZoneID,
		IsSellable: data.IsSellable,
		Reason:     data.Reason.StringVal,
	}, nil
}

package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// AvailabilityRepository defines the interface for the per-(product, zone)
// sellability gate.
type AvailabilityRepository interface {
	// Get returns the availability record for (product, zone), or
	// (nil, nil) when no record exists — absence means available.
	Get(ctx context.Context, productID, zoneID string) (*domain.ProductAvailability, error)
}

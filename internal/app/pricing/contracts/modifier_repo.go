package contracts

import (
	"context"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// ModifierRepository defines the interface for price modifier reads.
type ModifierRepository interface {
	// ListActive returns every active modifier. Validity windows, scope
	// matching and COMBINATION condition evaluation happen in the domain
	// against the assembled pricing context; modifier sets are small
	// enough that the engine filters in process.
	ListActive(ctx context.Context) ([]*domain.PriceModifier, error)
}

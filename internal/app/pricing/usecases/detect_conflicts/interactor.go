package detect_conflicts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// Request describes a proposed price at some (zone, segment) scope. Empty
// zone and segment means the master book itself.
type Request struct {
	ProductID string
	ZoneID    string
	SegmentID string
	NewPrice  decimal.Decimal
}

// Response is the structured conflict report offered to the caller.
type Response struct {
	HasConflicts      bool                        `json:"hasConflicts"`
	Conflicts         []domain.PriceConflict      `json:"conflicts"`
	ResolutionOptions []domain.ResolutionStrategy `json:"resolutionOptions"`
}

// Interactor handles the detect conflicts use case.
type Interactor struct {
	entries contracts.PriceEntryRepository
}

// NewInteractor creates a new detect conflicts interactor.
func NewInteractor(entries contracts.PriceEntryRepository) *Interactor {
	return &Interactor{entries: entries}
}

// Execute enumerates every entry for the product across all active books and
// classifies those whose scope differs from the proposed target. Detection
// never writes.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if req.NewPrice.IsNegative() {
		return nil, domain.ErrInvalidBasePrice
	}

	entries, err := i.entries.ListForProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	conflicts := domain.DetectConflicts(entries, req.ZoneID, req.SegmentID, req.NewPrice)
	resp := &Response{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}
	if resp.HasConflicts {
		resp.ResolutionOptions = domain.ResolutionStrategies()
	}
	return resp, nil
}

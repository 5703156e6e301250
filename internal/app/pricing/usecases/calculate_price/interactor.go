package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
)

// Request contains the inputs of one virtual price resolution.
// GeoZoneHierarchy, when supplied, is walked most-specific-first for the
// zone override; otherwise GeoZoneID alone is looked up directly. Category
// and attribute fields feed condition evaluation and may be left empty.
type Request struct {
	ProductID        string
	GeoZoneID        string
	SegmentID        string
	GeoZoneHierarchy []domain.GeoZone

	CategoryID    string
	SubcategoryID string
	Attributes    map[string]string
	Quantity      int64
	Extra         map[string]any
}

// Interactor resolves the effective price for a (product, zone, segment)
// triple: availability gate, master price, zone override, segment override,
// modifier application, final rounding.
type Interactor struct {
	books        contracts.PriceBookRepository
	entries      contracts.PriceEntryRepository
	availability contracts.AvailabilityRepository
	modifiers    contracts.ModifierRepository
	logger       *zap.Logger
	clock        clock.Clock
}

// NewInteractor creates a new calculate price interactor.
func NewInteractor(
	books contracts.PriceBookRepository,
	entries contracts.PriceEntryRepository,
	availability contracts.AvailabilityRepository,
	modifiers contracts.ModifierRepository,
	logger *zap.Logger,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		books:        books,
		entries:      entries,
		availability: availability,
		modifiers:    modifiers,
		logger:       logger,
		clock:        clk,
	}
}

// Execute runs the calculation. The result is a pure function of the
// current book and modifier state; every override and modifier application
// leaves a before/after snapshot in the adjustment trail.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Calculation, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	calc := &domain.Calculation{
		ProductID: req.ProductID,
		GeoZoneID: req.GeoZoneID,
		SegmentID: req.SegmentID,
	}

	// 1. Availability gate. A sellable=false record is terminal; absence of
	// a record means available.
	if req.GeoZoneID != "" {
		avail, err := i.availability.Get(ctx, req.ProductID, req.GeoZoneID)
		if err != nil {
			return nil, err
		}
		if avail != nil && !avail.IsSellable {
			calc.IsAvailable = false
			calc.UnavailableReason = avail.Reason
			return calc, nil
		}
	}
	calc.IsAvailable = true

	// 2. Master price. Absence is a hard failure, never a zero price.
	master, err := i.books.GetMasterBook(ctx)
	if err != nil {
		return nil, err
	}
	masterEntry, err := i.entries.Get(ctx, master.ID, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNoMasterPrice)
		}
		return nil, err
	}
	calc.MasterPrice = masterEntry.BasePrice
	price := masterEntry.BasePrice

	// 3. Zone override, most specific level first.
	price, err = i.applyZoneOverride(ctx, req, calc, price)
	if err != nil {
		return nil, err
	}

	// 4. Segment override: (zone, segment) exactly, then (no-zone, segment).
	price, err = i.applySegmentOverride(ctx, req, calc, price)
	if err != nil {
		return nil, err
	}

	// 5. Modifiers.
	price, err = i.applyModifiers(ctx, req, calc, price)
	if err != nil {
		return nil, err
	}

	// 6. Round once, at the very end.
	calc.FinalPrice = domain.RoundPrice(price)
	return calc, nil
}

// applyZoneOverride walks the supplied hierarchy (or the single zone id) and
// takes the first zone-only book that prices the product. No match at any
// level carries the running price forward unchanged.
func (i *Interactor) applyZoneOverride(ctx context.Context, req *Request, calc *domain.Calculation, price decimal.Decimal) (decimal.Decimal, error) {
	zones := req.GeoZoneHierarchy
	if len(zones) == 0 && req.GeoZoneID != "" {
		zones = []domain.GeoZone{{ID: req.GeoZoneID}}
	}

	for _, zone := range zones {
		entry, err := i.entryForScope(ctx, zone.ID, "", req.ProductID)
		if err != nil {
			return price, err
		}
		if entry == nil {
			continue
		}

		calc.Adjustments = append(calc.Adjustments, domain.Adjustment{
			Kind:   domain.AdjustmentZoneOverride,
			Label:  "zone override " + zone.ID,
			Value:  entry.BasePrice,
			Before: price,
			After:  entry.BasePrice,
		})
		calc.UsedZoneID = zone.ID
		calc.UsedZoneLevel = zone.Level
		return entry.BasePrice, nil
	}

	if len(req.GeoZoneHierarchy) > 0 {
		// Best-effort: the hierarchy resolved but no book prices the
		// product there. Worth a trace, never an error.
		i.logger.Debug("no zone override in resolved hierarchy",
			zap.String("productId", req.ProductID),
			zap.Int("hierarchyDepth", len(req.GeoZoneHierarchy)),
		)
	}
	return price, nil
}

func (i *Interactor) applySegmentOverride(ctx context.Context, req *Request, calc *domain.Calculation, price decimal.Decimal) (decimal.Decimal, error) {
	if req.SegmentID == "" {
		return price, nil
	}

	scopeZone := calc.UsedZoneID
	if scopeZone == "" {
		scopeZone = req.GeoZoneID
	}

	var entry *domain.PriceBookEntry
	var err error
	if scopeZone != "" {
		entry, err = i.entryForScope(ctx, scopeZone, req.SegmentID, req.ProductID)
		if err != nil {
			return price, err
		}
	}
	if entry == nil {
		entry, err = i.entryForScope(ctx, "", req.SegmentID, req.ProductID)
		if err != nil {
			return price, err
		}
	}
	if entry == nil {
		return price, nil
	}

	calc.Adjustments = append(calc.Adjustments, domain.Adjustment{
		Kind:   domain.AdjustmentSegmentOverride,
		Label:  "segment override " + req.SegmentID,
		Value:  entry.BasePrice,
		Before: price,
		After:  entry.BasePrice,
	})
	return entry.BasePrice, nil
}

func (i *Interactor) applyModifiers(ctx context.Context, req *Request, calc *domain.Calculation, price decimal.Decimal) (decimal.Decimal, error) {
	mods, err := i.modifiers.ListActive(ctx)
	if err != nil {
		return price, err
	}
	if len(mods) == 0 {
		return price, nil
	}

	pctx := &domain.PricingContext{
		ProductID:     req.ProductID,
		GeoZoneID:     req.GeoZoneID,
		SegmentID:     req.SegmentID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Attributes:    req.Attributes,
		Quantity:      req.Quantity,
		BasePrice:     price,
		Extra:         req.Extra,
	}

	now := i.clock.Now()
	applicable := make([]*domain.PriceModifier, 0, len(mods))
	for _, m := range mods {
		if !m.IsValidAt(now) {
			continue
		}
		if !m.AppliesToContext(pctx) {
			continue
		}
		applicable = append(applicable, m)
	}

	for _, m := range domain.SelectForApplication(applicable) {
		after := m.Apply(price)
		calc.Adjustments = append(calc.Adjustments, domain.Adjustment{
			Kind:         domain.AdjustmentModifier,
			Label:        m.Name,
			ModifierID:   m.ID,
			ModifierType: m.Type,
			Value:        m.Value,
			Before:       price,
			After:        after,
		})
		price = after
		calc.ModifiersApplied++
	}
	return price, nil
}

// entryForScope resolves the book at exactly (zone, segment) and its entry
// for the product. Either absence returns (nil, nil): no override is a
// normal branch.
func (i *Interactor) entryForScope(ctx context.Context, zoneID, segmentID, productID string) (*domain.PriceBookEntry, error) {
	book, err := i.books.GetBookForScope(ctx, zoneID, segmentID)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entry, err := i.entries.Get(ctx, book.ID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

package set_price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// Request sets a product's price at some (zone, segment) scope. Empty zone
// and segment targets the master book.
type Request struct {
	ProductID     string
	ZoneID        string
	SegmentID     string
	NewPrice      decimal.Decimal
	ChangedBy     string
	ChangedReason string
}

// Response either confirms the write or, when more specific overrides shadow
// the target scope, reports the conflicts and asks the caller to pick a
// resolution strategy. RequiresResolution is not a failure.
type Response struct {
	RequiresResolution bool                        `json:"requiresResolution"`
	Conflicts          []domain.PriceConflict      `json:"conflicts,omitempty"`
	ResolutionOptions  []domain.ResolutionStrategy `json:"resolutionOptions,omitempty"`
	BookID             string                      `json:"bookId,omitempty"`
	NewPrice           decimal.Decimal             `json:"newPrice"`
}

// Interactor handles the set price use case.
type Interactor struct {
	books     contracts.PriceBookRepository
	entries   contracts.PriceEntryRepository
	outbox    contracts.OutboxRepository
	history   contracts.PriceHistoryRepository
	committer contracts.Committer
	clock     clock.Clock
}

// NewInteractor creates a new set price interactor.
func NewInteractor(
	books contracts.PriceBookRepository,
	entries contracts.PriceEntryRepository,
	outbox contracts.OutboxRepository,
	history contracts.PriceHistoryRepository,
	cmt contracts.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		books:     books,
		entries:   entries,
		outbox:    outbox,
		history:   history,
		committer: cmt,
		clock:     clk,
	}
}

// Execute writes the price unless a more specific override shadows the
// target scope, in which case it returns the conflict report and writes
// nothing.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := i.validate(req); err != nil {
		return nil, err
	}

	all, err := i.entries.ListForProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	conflicts := domain.DetectConflicts(all, req.ZoneID, req.SegmentID, req.NewPrice)
	if len(conflicts) > 0 {
		return &Response{
			RequiresResolution: true,
			Conflicts:          conflicts,
			ResolutionOptions:  domain.ResolutionStrategies(),
			NewPrice:           req.NewPrice,
		}, nil
	}

	plan := committer.NewPlan()
	now := i.clock.Now()

	book, err := i.targetBook(ctx, req.ZoneID, req.SegmentID, plan)
	if err != nil {
		return nil, err
	}

	var oldPrice *decimal.Decimal
	existing, err := i.entries.Get(ctx, book.ID, req.ProductID)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}
	if existing != nil {
		oldPrice = &existing.BasePrice
	}

	entry, err := domain.NewPriceBookEntry(book.ID, req.ProductID, req.NewPrice)
	if err != nil {
		return nil, err
	}
	plan.Add(i.entries.UpsertMut(entry))
	plan.Add(i.history.InsertMut(
		uuid.New().String(), book.ID, req.ProductID,
		oldPrice, req.NewPrice, req.ChangedBy, req.ChangedReason, now,
	))

	event := &domain.PriceEntryUpsertedEvent{
		BookID:    book.ID,
		ProductID: req.ProductID,
		OldPrice:  oldPrice,
		NewPrice:  req.NewPrice,
		ChangedAt: now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, string(payload))))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit price change: %w", err)
	}

	return &Response{
		BookID:   book.ID,
		NewPrice: req.NewPrice,
	}, nil
}

func (i *Interactor) validate(req *Request) error {
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required")
	}
	if req.NewPrice.IsNegative() {
		return domain.ErrInvalidBasePrice
	}
	if req.ChangedBy == "" {
		return fmt.Errorf("changedBy is required")
	}
	return nil
}

func (i *Interactor) targetBook(ctx context.Context, zoneID, segmentID string, plan *committer.CommitPlan) (*domain.PriceBook, error) {
	if zoneID == "" && segmentID == "" {
		return i.books.GetMasterBook(ctx)
	}

	book, err := i.books.GetBookForScope(ctx, zoneID, segmentID)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, domain.ErrBookNotFound) {
		return nil, err
	}

	master, err := i.books.GetMasterBook(ctx)
	if err != nil {
		return nil, err
	}
	book = &domain.PriceBook{
		ID:           uuid.New().String(),
		GeoZoneID:    zoneID,
		SegmentID:    segmentID,
		IsActive:     true,
		ParentBookID: master.ID,
	}
	plan.Add(i.books.InsertMut(book))
	return book, nil
}

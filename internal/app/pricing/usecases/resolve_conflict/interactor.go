package resolve_conflict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// Request applies a resolution strategy to the conflicts of a proposed
// price. ResolutionID must be one of OVERWRITE/PRESERVE/RELATIVE; anything
// else fails loudly with no fallback.
type Request struct {
	ResolutionID  string
	ProductID     string
	ZoneID        string
	SegmentID     string
	NewPrice      decimal.Decimal
	ChangedBy     string
	ChangedReason string
}

// Response reports what the resolution did.
type Response struct {
	Action        domain.ResolutionStrategy `json:"action"`
	AffectedCount int                       `json:"affectedCount"`
	NewPrice      decimal.Decimal           `json:"newPrice"`
}

// Interactor handles the resolve conflict use case.
type Interactor struct {
	books     contracts.PriceBookRepository
	entries   contracts.PriceEntryRepository
	outbox    contracts.OutboxRepository
	history   contracts.PriceHistoryRepository
	committer contracts.Committer
	logger    *zap.Logger
	clock     clock.Clock
}

// NewInteractor creates a new resolve conflict interactor.
func NewInteractor(
	books contracts.PriceBookRepository,
	entries contracts.PriceEntryRepository,
	outbox contracts.OutboxRepository,
	history contracts.PriceHistoryRepository,
	cmt contracts.Committer,
	logger *zap.Logger,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		books:     books,
		entries:   entries,
		outbox:    outbox,
		history:   history,
		committer: cmt,
		logger:    logger,
		clock:     clk,
	}
}

// Execute re-detects conflicts against current state, applies the chosen
// strategy, and writes everything — deleted/rescaled conflicting entries,
// the new target entry, history rows, the outbox event — in one commit plan.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	strategy, err := domain.ParseResolutionStrategy(req.ResolutionID)
	if err != nil {
		return nil, err
	}
	if req.ProductID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if req.NewPrice.IsNegative() {
		return nil, domain.ErrInvalidBasePrice
	}

	// Detection ran earlier, but state may have moved; resolve against what
	// is actually persisted now.
	all, err := i.entries.ListForProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	conflicts := domain.DetectConflicts(all, req.ZoneID, req.SegmentID, req.NewPrice)

	plan := committer.NewPlan()
	now := i.clock.Now()

	targetBook, err := i.targetBook(ctx, req.ZoneID, req.SegmentID, plan)
	if err != nil {
		return nil, err
	}

	affected := 0
	switch strategy {
	case domain.ResolutionOverwrite:
		for _, c := range conflicts {
			plan.Add(i.entries.DeleteMut(c.BookID, req.ProductID))
			affected++
		}

	case domain.ResolutionPreserve:
		// Conflicting overrides keep shadowing the new price wherever they
		// exist; only the target entry is written.

	case domain.ResolutionRelative:
		ratio, rerr := i.relativeRatio(ctx, req, all)
		if rerr != nil {
			return nil, rerr
		}
		for _, c := range conflicts {
			rescaled := domain.RoundPrice(c.ExistingPrice.Mul(ratio))
			entry, eerr := domain.NewPriceBookEntry(c.BookID, req.ProductID, rescaled)
			if eerr != nil {
				return nil, eerr
			}
			plan.Add(i.entries.UpsertMut(entry))
			old := c.ExistingPrice
			plan.Add(i.history.InsertMut(
				uuid.New().String(), c.BookID, req.ProductID,
				&old, rescaled, req.ChangedBy, "relative conflict resolution", now,
			))
			affected++
		}
	}

	// The new entry at the target scope.
	newEntry, err := domain.NewPriceBookEntry(targetBook.ID, req.ProductID, req.NewPrice)
	if err != nil {
		return nil, err
	}
	plan.Add(i.entries.UpsertMut(newEntry))
	plan.Add(i.history.InsertMut(
		uuid.New().String(), targetBook.ID, req.ProductID,
		i.currentPrice(all, targetBook.ID), req.NewPrice, req.ChangedBy, req.ChangedReason, now,
	))

	event := &domain.ConflictResolvedEvent{
		ProductID:     req.ProductID,
		Strategy:      strategy,
		AffectedCount: affected,
		NewPrice:      req.NewPrice,
		ResolvedAt:    now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, string(payload))))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}

	i.logger.Info("price conflict resolved",
		zap.String("productId", req.ProductID),
		zap.String("strategy", string(strategy)),
		zap.Int("affectedCount", affected),
	)

	return &Response{
		Action:        strategy,
		AffectedCount: affected,
		NewPrice:      req.NewPrice,
	}, nil
}

// targetBook resolves the book the new price lands in, lazily creating an
// override book for a scope that never had one. The creation mutation rides
// in the same plan as the entry write.
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

// relativeRatio anchors on the master price current at call time, which may
// differ from the master price in effect when a conflicting override was
// created.
func (i *Interactor) relativeRatio(ctx context.Context, req *Request, all []domain.EntryWithBook) (decimal.Decimal, error) {
	for _, e := range all {
		if e.Book.IsMaster {
			return domain.PriceRatio(req.NewPrice, e.Entry.BasePrice)
		}
	}
	return decimal.Zero, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNoMasterPrice)
}

func (i *Interactor) currentPrice(all []domain.EntryWithBook, bookID string) *decimal.Decimal {
	for _, e := range all {
		if e.Entry.BookID == bookID {
			p := e.Entry.BasePrice
			return &p
		}
	}
	return nil
}

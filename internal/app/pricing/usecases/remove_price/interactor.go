package remove_price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

// Request removes a product's price override at some (zone, segment) scope.
type Request struct {
	ProductID string
	ZoneID    string
	SegmentID string
}

// Interactor handles the remove price use case.
type Interactor struct {
	books     contracts.PriceBookRepository
	entries   contracts.PriceEntryRepository
	outbox    contracts.OutboxRepository
	committer contracts.Committer
	clock     clock.Clock
}

// NewInteractor creates a new remove price interactor.
func NewInteractor(
	books contracts.PriceBookRepository,
	entries contracts.PriceEntryRepository,
	outbox contracts.OutboxRepository,
	cmt contracts.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		books:     books,
		entries:   entries,
		outbox:    outbox,
		committer: cmt,
		clock:     clk,
	}
}

// Execute deletes the entry at the scope. Removing a price that does not
// exist is a no-op, not an error.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return fmt.Errorf("product ID is required")
	}

	var book *domain.PriceBook
	var err error
	if req.ZoneID == "" && req.SegmentID == "" {
		book, err = i.books.GetMasterBook(ctx)
	} else {
		book, err = i.books.GetBookForScope(ctx, req.ZoneID, req.SegmentID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return nil
		}
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.entries.DeleteMut(book.ID, req.ProductID))

	event := &domain.PriceEntryDeletedEvent{
		BookID:    book.ID,
		ProductID: req.ProductID,
		ChangedAt: i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	plan.Add(i.outbox.InsertMut(i.outbox.EnrichEvent(event, string(payload))))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit price removal: %w", err)
	}
	return nil
}

package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// PriceEntryRepository defines the interface for price book entry
// persistence.
type PriceEntryRepository interface {
	// Get retrieves the entry for (book, product).
	// Returns domain.ErrEntryNotFound when absent.
	Get(ctx context.Context, bookID, productID string) (*domain.PriceBookEntry, error)

	// ListForProduct returns every entry for the product across all active
	// books, joined with the owning book. Conflict detection walks this set.
	ListForProduct(ctx context.Context, productID string) ([]domain.EntryWithBook, error)

	// UpsertMut creates a mutation writing the entry; idempotent per
	// (book, product).
	UpsertMut(entry *domain.PriceBookEntry) *spanner.Mutation

	// DeleteMut creates a mutation removing the entry; deleting a missing
	// entry is a no-op.
	DeleteMut(bookID, productID string) *spanner.Mutation
}

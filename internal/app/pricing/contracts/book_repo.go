package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// PriceBookRepository defines the interface for price book persistence.
// Repositories return mutations, they don't apply them (Golden Mutation
// Pattern); usecases collect mutations into a commit plan.
type PriceBookRepository interface {
	// GetMasterBook returns the single active master book.
	// Returns domain.ErrNoMasterBook when the system was never bootstrapped.
	GetMasterBook(ctx context.Context) (*domain.PriceBook, error)

	// GetBookForScope returns the active book scoped to exactly
	// (zoneID, segmentID); empty strings mean "not scoped by that
	// dimension". Returns domain.ErrBookNotFound when absent — callers
	// treat that as a normal branch, not a failure.
	GetBookForScope(ctx context.Context, zoneID, segmentID string) (*domain.PriceBook, error)

	// GetByID retrieves a book by id.
	GetByID(ctx context.Context, bookID string) (*domain.PriceBook, error)

	// InsertMut creates a mutation for inserting a new book.
	InsertMut(book *domain.PriceBook) *spanner.Mutation
}

package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
)

// PriceHistoryRecord is one persisted price change on a (book, product).
type PriceHistoryRecord struct {
	HistoryID     string
	BookID        string
	ProductID     string
	OldPrice      *decimal.Decimal
	NewPrice      decimal.Decimal
	ChangedBy     string
	ChangedReason string
	ChangedAt     time.Time
}

// PriceHistoryRepository defines the interface for the price change log.
type PriceHistoryRepository interface {
	// InsertMut creates a mutation recording a price change.
	// oldPrice is nil when the entry is created for the first time.
	InsertMut(historyID, bookID, productID string, oldPrice *decimal.Decimal, newPrice decimal.Decimal, changedBy, changedReason string, changedAt time.Time) *spanner.Mutation

	// ListForProduct retrieves recent changes for a product, most recent
	// first.
	ListForProduct(ctx context.Context, productID string, limit int) ([]PriceHistoryRecord, error)
}

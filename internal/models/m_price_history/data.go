package m_price_history

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_history table.
// One row per admin price change on a (book, product) pair.
type Data struct {
	HistoryID     string              `spanner:"history_id"`
	BookID        string              `spanner:"book_id"`
	ProductID     string              `spanner:"product_id"`
	OldPrice      spanner.NullNumeric `spanner:"old_price"`
	NewPrice      big.Rat             `spanner:"new_price"`
	ChangedBy     spanner.NullString  `spanner:"changed_by"`
	ChangedReason spanner.NullString  `spanner:"changed_reason"`
	ChangedAt     time.Time           `spanner:"changed_at"`
}

// Model provides a facade for type-safe operations on the price_history
// table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a history record.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			HistoryID,
			BookID,
			ProductID,
			OldPrice,
			NewPrice,
			ChangedBy,
			ChangedReason,
			ChangedAt,
		},
		[]interface{}{
			data.HistoryID,
			data.BookID,
			data.ProductID,
			data.OldPrice,
			data.NewPrice,
			data.ChangedBy,
			data.ChangedReason,
			data.ChangedAt,
		},
	)
}

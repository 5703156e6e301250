package m_book_entry

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_book_entries table.
// Prices are NUMERIC columns; the Spanner client maps them to big.Rat.
type Data struct {
	BookID         string              `spanner:"book_id"`
	ProductID      string              `spanner:"product_id"`
	BasePrice      big.Rat             `spanner:"base_price"`
	CompareAtPrice spanner.NullNumeric `spanner:"compare_at_price"`
	CreatedAt      time.Time           `spanner:"created_at"`
	UpdatedAt      time.Time           `spanner:"updated_at"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBook identifies a pricing context within the book hierarchy.
// Exactly one active book is the master; an override book is scoped to a
// geo zone, a user segment, or both. Empty GeoZoneID/SegmentID means
// "not scoped by that dimension".
type PriceBook struct {
	ID           string
	GeoZoneID    string
	SegmentID    string
	IsMaster     bool
	IsActive     bool
	ParentBookID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MatchesScope reports whether the book is scoped to exactly the given
// (zone, segment) pair. The master book matches only the empty pair when
// compared as an override scope; callers use GetMasterBook for master reads.
func (b *PriceBook) MatchesScope(zoneID, segmentID string) bool {
	return b.GeoZoneID == zoneID && b.SegmentID == segmentID
}

// PriceBookEntry is the price of one product within one book.
// Unique per (book, product).
type PriceBookEntry struct {
	BookID         string
	ProductID      string
	BasePrice      decimal.Decimal
	CompareAtPrice *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPriceBookEntry creates a validated entry.
func NewPriceBookEntry(bookID, productID string, basePrice decimal.Decimal) (*PriceBookEntry, error) {
	if basePrice.IsNegative() {
		return nil, ErrInvalidBasePrice
	}
	return &PriceBookEntry{
		BookID:    bookID,
		ProductID: productID,
		BasePrice: basePrice,
	}, nil
}

// EntryWithBook pairs an entry with the book that owns it. Conflict
// detection needs the book scope of every entry for a product.
type EntryWithBook struct {
	Entry PriceBookEntry
	Book  PriceBook
}

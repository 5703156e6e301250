package m_price_book

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_books table.
type Data struct {
	BookID       string             `spanner:"book_id"`
	GeoZoneID    spanner.NullString `spanner:"geo_zone_id"`
	SegmentID    spanner.NullString `spanner:"segment_id"`
	IsMaster     bool               `spanner:"is_master"`
	IsActive     bool               `spanner:"is_active"`
	ParentBookID spanner.NullString `spanner:"parent_book_id"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}

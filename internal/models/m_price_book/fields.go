package m_price_book

// Field name constants for the price_books table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "price_books"

	BookID       = "book_id"
	GeoZoneID    = "geo_zone_id"
	SegmentID    = "segment_id"
	IsMaster     = "is_master"
	IsActive     = "is_active"
	ParentBookID = "parent_book_id"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)

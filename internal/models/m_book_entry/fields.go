package m_book_entry

// Field name constants for the price_book_entries table.
const (
	TableName = "price_book_entries"

	BookID         = "book_id"
	ProductID      = "product_id"
	BasePrice      = "base_price"
	CompareAtPrice = "compare_at_price"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

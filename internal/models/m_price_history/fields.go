package m_price_history

// Field name constants for the price_history table.
const (
	TableName = "price_history"

	HistoryID     = "history_id"
	BookID        = "book_id"
	ProductID     = "product_id"
	OldPrice      = "old_price"
	NewPrice      = "new_price"
	ChangedBy     = "changed_by"
	ChangedReason = "changed_reason"
	ChangedAt     = "changed_at"
)

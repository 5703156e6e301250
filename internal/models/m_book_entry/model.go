package m_book_entry

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the
// price_book_entries table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation for inserting or replacing an entry.
// Upserts keep the operation idempotent per (book, product).
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			BookID,
			ProductID,
			BasePrice,
			CompareAtPrice,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.BookID,
			data.ProductID,
			data.BasePrice,
			data.CompareAtPrice,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting an entry (hard delete).
// Deleting a missing key is a no-op in Spanner, matching the idempotent
// delete contract.
func (m *Model) DeleteMut(bookID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{bookID, productID})
}

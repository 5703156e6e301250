package m_price_book

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the price_books table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a price book.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			BookID,
			GeoZoneID,
			SegmentID,
			IsMaster,
			IsActive,
			ParentBookID,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.BookID,
			data.GeoZoneID,
			data.SegmentID,
			data.IsMaster,
			data.IsActive,
			data.ParentBookID,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific book fields.
func (m *Model) UpdateMut(bookID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, BookID)
	values = append(values, bookID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

package m_modifier

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the price_modifiers
// table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a modifier.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ModifierID,
			Name,
			AppliesTo,
			ModifierType,
			Value,
			IsStackable,
			Priority,
			Conditions,
			GeoZoneID,
			SegmentID,
			ProductID,
			CategoryID,
			AttributeName,
			AttributeValue,
			ValidFrom,
			ValidTo,
			IsActive,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ModifierID,
			data.Name,
			data.AppliesTo,
			data.ModifierType,
			data.Value,
			data.IsStackable,
			data.Priority,
			data.Conditions,
			data.GeoZoneID,
			data.SegmentID,
			data.ProductID,
			data.CategoryID,
			data.AttributeName,
			data.AttributeValue,
			data.ValidFrom,
			data.ValidTo,
			data.IsActive,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific modifier fields.
func (m *Model) UpdateMut(modifierID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ModifierID)
	values = append(values, modifierID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a modifier (hard delete).
func (m *Model) DeleteMut(modifierID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{modifierID})
}

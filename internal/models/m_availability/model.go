package m_availability

import "cloud.google.com/go/spanner"

// Field name constants for the product_availability table.
const (
	TableName = "product_availability"

	ProductID  = "product_id"
	ZoneID     = "zone_id"
	IsSellable = "is_sellable"
	Reason     = "reason"
)

// Data represents the database model for the product_availability table.
// Absence of a row means the product is sellable in the zone.
type Data struct {
	ProductID  string             `spanner:"product_id"`
	ZoneID     string             `spanner:"zone_id"`
	IsSellable bool               `spanner:"is_sellable"`
	Reason     spanner.NullString `spanner:"reason"`
}

// Model provides a facade for type-safe operations on the
// product_availability table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation for inserting or replacing a record.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{ProductID, ZoneID, IsSellable, Reason},
		[]interface{}{data.ProductID, data.ZoneID, data.IsSellable, data.Reason},
	)
}

// DeleteMut creates a Spanner mutation for removing a record, restoring the
// whitelist-by-default behavior for the (product, zone) pair.
func (m *Model) DeleteMut(productID, zoneID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, zoneID})
}

package m_zone_mapping

import "cloud.google.com/go/spanner"

// Field name constants for the geo_zone_mappings table.
const (
	TableName = "geo_zone_mappings"

	MappingID  = "mapping_id"
	ZoneID     = "zone_id"
	RangeStart = "range_start"
	RangeEnd   = "range_end"
)

// Data represents the database model for the geo_zone_mappings table.
// A row binds the inclusive postal-code range [RangeStart, RangeEnd] to
// one zone; many mappings may point at the same zone.
type Data struct {
	MappingID  string `spanner:"mapping_id"`
	ZoneID     string `spanner:"zone_id"`
	RangeStart int64  `spanner:"range_start"`
	RangeEnd   int64  `spanner:"range_end"`
}

// Model provides a facade for type-safe operations on the
// geo_zone_mappings table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a mapping.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{MappingID, ZoneID, RangeStart, RangeEnd},
		[]interface{}{data.MappingID, data.ZoneID, data.RangeStart, data.RangeEnd},
	)
}

package m_geo_zone

import "cloud.google.com/go/spanner"

// Field name constants for the geo_zones table.
const (
	TableName = "geo_zones"

	ZoneID   = "zone_id"
	Name     = "name"
	Level    = "level"
	Priority = "priority"
	IsActive = "is_active"
)

// Data represents the database model for the geo_zones table.
type Data struct {
	ZoneID   string `spanner:"zone_id"`
	Name     string `spanner:"name"`
	Level    string `spanner:"level"`
	Priority int64  `spanner:"priority"`
	IsActive bool   `spanner:"is_active"`
}

// Model provides a facade for type-safe operations on the geo_zones table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a geo zone.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{ZoneID, Name, Level, Priority, IsActive},
		[]interface{}{data.ZoneID, data.Name, data.Level, data.Priority, data.IsActive},
	)
}

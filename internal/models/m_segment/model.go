package m_segment

import "cloud.google.com/go/spanner"

// Field name constants for the user_segments table.
const (
	TableName = "user_segments"

	SegmentID   = "segment_id"
	Name        = "name"
	Priority    = "priority"
	PricingTier = "pricing_tier"
	IsDefault   = "is_default"
	IsSystem    = "is_system"
)

// Data represents the database model for the user_segments table.
type Data struct {
	SegmentID   string `spanner:"segment_id"`
	Name        string `spanner:"name"`
	Priority    int64  `spanner:"priority"`
	PricingTier string `spanner:"pricing_tier"`
	IsDefault   bool   `spanner:"is_default"`
	IsSystem    bool   `spanner:"is_system"`
}

// Model provides a facade for type-safe operations on the user_segments table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a segment.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{SegmentID, Name, Priority, PricingTier, IsDefault, IsSystem},
		[]interface{}{data.SegmentID, data.Name, data.Priority, data.PricingTier, data.IsDefault, data.IsSystem},
	)
}

package m_modifier

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_modifiers table.
// Conditions holds the JSON-encoded condition tree for COMBINATION
// modifiers; it is parsed into the domain union on read.
type Data struct {
	ModifierID     string             `spanner:"modifier_id"`
	Name           string             `spanner:"name"`
	AppliesTo      string             `spanner:"applies_to"`
	ModifierType   string             `spanner:"modifier_type"`
	Value          big.Rat            `spanner:"value"`
	IsStackable    bool               `spanner:"is_stackable"`
	Priority       int64              `spanner:"priority"`
	Conditions     spanner.NullString `spanner:"conditions"`
	GeoZoneID      spanner.NullString `spanner:"geo_zone_id"`
	SegmentID      spanner.NullString `spanner:"segment_id"`
	ProductID      spanner.NullString `spanner:"product_id"`
	CategoryID     spanner.NullString `spanner:"category_id"`
	AttributeName  spanner.NullString `spanner:"attribute_name"`
	AttributeValue spanner.NullString `spanner:"attribute_value"`
	ValidFrom      spanner.NullTime   `spanner:"valid_from"`
	ValidTo        spanner.NullTime   `spanner:"valid_to"`
	IsActive       bool               `spanner:"is_active"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}

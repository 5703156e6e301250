package m_modifier

// Field name constants for the price_modifiers table.
const (
	TableName = "price_modifiers"

	ModifierID     = "modifier_id"
	Name           = "name"
	AppliesTo      = "applies_to"
	ModifierType   = "modifier_type"
	Value          = "value"
	IsStackable    = "is_stackable"
	Priority       = "priority"
	Conditions     = "conditions"
	GeoZoneID      = "geo_zone_id"
	SegmentID      = "segment_id"
	ProductID      = "product_id"
	CategoryID     = "category_id"
	AttributeName  = "attribute_name"
	AttributeValue = "attribute_value"
	ValidFrom      = "valid_from"
	ValidTo        = "valid_to"
	IsActive       = "is_active"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

package domain

import "github.com/shopspring/decimal"

// Well-known logical field names resolvable from a PricingContext.
const (
	FieldProduct     = "product"
	FieldGeoZone     = "geo_zone"
	FieldUserSegment = "user_segment"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldQuantity    = "quantity"
	FieldBasePrice   = "base_price"
)

// PricingContext carries the runtime facts a calculation runs against.
// The caller assembles it; condition leaves resolve their field names
// against it. Extra holds any cart-level fields the caller chooses to add.
type PricingContext struct {
	ProductID     string
	GeoZoneID     string
	SegmentID     string
	CategoryID    string
	SubcategoryID string
	Attributes    map[string]string
	Quantity      int64
	BasePrice     decimal.Decimal
	Extra         map[string]any
}

// Field resolves a logical field name to a value. The second return is
// false when the field is unknown or empty; operators treat that as a
// missing value (only IS_NULL / IS_NOT_NULL match it).
func (c *PricingContext) Field(name string) (any, bool) {
	switch name {
	case FieldProduct:
		return stringField(c.ProductID)
	case FieldGeoZone:
		return stringField(c.GeoZoneID)
	case FieldUserSegment:
		return stringField(c.SegmentID)
	case FieldCategory:
		return stringField(c.CategoryID)
	case FieldSubcategory:
		return stringField(c.SubcategoryID)
	case FieldQuantity:
		if c.Quantity == 0 {
			return nil, false
		}
		return c.Quantity, true
	case FieldBasePrice:
		return c.BasePrice, true
	}
	if v, ok := c.Attributes[name]; ok {
		return v, true
	}
	if v, ok := c.Extra[name]; ok {
		return v, v != nil
	}
	return nil, false
}

func stringField(v string) (any, bool) {
	if v == "" {
		return nil, false
	}
	return v, true
}

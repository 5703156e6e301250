package domain

import "github.com/shopspring/decimal"

// AdjustmentKind tags one step in the calculation audit trail.
type AdjustmentKind string

const (
	AdjustmentZoneOverride    AdjustmentKind = "ZONE_OVERRIDE"
	AdjustmentSegmentOverride AdjustmentKind = "SEGMENT_OVERRIDE"
	AdjustmentModifier        AdjustmentKind = "MODIFIER"
)

// Adjustment is one before/after snapshot in the trail: a zone override, a
// segment override, or one applied modifier.
type Adjustment struct {
	Kind         AdjustmentKind  `json:"kind"`
	Label        string          `json:"label"`
	ModifierID   string          `json:"modifierId,omitempty"`
	ModifierType ModifierType    `json:"modifierType,omitempty"`
	Value        decimal.Decimal `json:"value"`
	Before       decimal.Decimal `json:"before"`
	After        decimal.Decimal `json:"after"`
}

// Calculation is the full result of one virtual price resolution. When
// IsAvailable is false the price fields are unset and UnavailableReason
// echoes the stored reason; that state is terminal. The trail is a pure
// function of the inputs and the current book/modifier state.
type Calculation struct {
	ProductID         string
	GeoZoneID         string
	SegmentID         string
	IsAvailable       bool
	UnavailableReason string
	MasterPrice       decimal.Decimal
	FinalPrice        decimal.Decimal
	Adjustments       []Adjustment
	ModifiersApplied  int
	UsedZoneID        string
	UsedZoneLevel     string
}

package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AppliesTo is the scope category of a modifier.
type AppliesTo string

const (
	AppliesGlobal      AppliesTo = "GLOBAL"
	AppliesZone        AppliesTo = "ZONE"
	AppliesSegment     AppliesTo = "SEGMENT"
	AppliesProduct     AppliesTo = "PRODUCT"
	AppliesCategory    AppliesTo = "CATEGORY"
	AppliesAttribute   AppliesTo = "ATTRIBUTE"
	AppliesCombination AppliesTo = "COMBINATION"
)

// ModifierType is the arithmetic a modifier performs.
type ModifierType string

const (
	PercentInc ModifierType = "PERCENT_INC"
	PercentDec ModifierType = "PERCENT_DEC"
	FlatInc    ModifierType = "FLAT_INC"
	FlatDec    ModifierType = "FLAT_DEC"
)

// IsPercent reports whether the type scales the price rather than shifting it.
func (t ModifierType) IsPercent() bool {
	return t == PercentInc || t == PercentDec
}

// IsIncrease reports whether the type raises the price.
func (t ModifierType) IsIncrease() bool {
	return t == PercentInc || t == FlatInc
}

// PriceModifier is a rule that adjusts a price. Scope references are empty
// unless AppliesTo demands them; Conditions is set only for COMBINATION.
type PriceModifier struct {
	ID          string
	Name        string
	AppliesTo   AppliesTo
	Type        ModifierType
	Value       decimal.Decimal
	IsStackable bool
	Priority    int64
	Conditions  *ConditionNode

	GeoZoneID      string
	SegmentID      string
	ProductID      string
	CategoryID     string
	AttributeName  string
	AttributeValue string

	ValidFrom *time.Time
	ValidTo   *time.Time
	IsActive  bool
}

// Validate enforces the structural invariants: non-negative value, <=100 for
// percentage types, the scope reference demanded by AppliesTo, and a
// condition tree for COMBINATION.
func (m *PriceModifier) Validate() error {
	if m.Value.IsNegative() {
		return ErrInvalidModifierValue
	}
	if m.Type.IsPercent() && m.Value.GreaterThan(hundred) {
		return ErrInvalidModifierValue
	}

	switch m.AppliesTo {
	case AppliesGlobal:
	case AppliesZone:
		if m.GeoZoneID == "" {
			return ErrMissingScopeReference
		}
	case AppliesSegment:
		if m.SegmentID == "" {
			return ErrMissingScopeReference
		}
	case AppliesProduct:
		if m.ProductID == "" {
			return ErrMissingScopeReference
		}
	case AppliesCategory:
		if m.CategoryID == "" {
			return ErrMissingScopeReference
		}
	case AppliesAttribute:
		if m.AttributeName == "" || m.AttributeValue == "" {
			return ErrMissingScopeReference
		}
	case AppliesCombination:
		if m.Conditions == nil {
			return ErrMissingConditions
		}
		if result := m.Conditions.Validate(); !result.IsValid {
			return ErrInvalidConditionTree
		}
	default:
		return ErrMissingScopeReference
	}
	return nil
}

// IsValidAt checks the optional validity window, inclusive on both ends.
func (m *PriceModifier) IsValidAt(t time.Time) bool {
	if m.ValidFrom != nil && t.Before(*m.ValidFrom) {
		return false
	}
	if m.ValidTo != nil && t.After(*m.ValidTo) {
		return false
	}
	return true
}

// AppliesToContext reports whether the modifier's scope matches the context.
// Attribute matching is exact string equality; COMBINATION evaluates its
// condition tree.
func (m *PriceModifier) AppliesToContext(ctx *PricingContext) bool {
	switch m.AppliesTo {
	case AppliesGlobal:
		return true
	case AppliesZone:
		return m.GeoZoneID != "" && m.GeoZoneID == ctx.GeoZoneID
	case AppliesSegment:
		return m.SegmentID != "" && m.SegmentID == ctx.SegmentID
	case AppliesProduct:
		return m.ProductID != "" && m.ProductID == ctx.ProductID
	case AppliesCategory:
		return m.CategoryID != "" &&
			(m.CategoryID == ctx.CategoryID || m.CategoryID == ctx.SubcategoryID)
	case AppliesAttribute:
		return ctx.Attributes[m.AttributeName] == m.AttributeValue
	case AppliesCombination:
		return m.Conditions != nil && m.Conditions.Evaluate(ctx)
	}
	return false
}

// Apply runs the modifier's arithmetic against a price at full precision.
//
//	PERCENT_INC: price * (1 + value/100)
//	PERCENT_DEC: price * (1 - value/100)
//	FLAT_INC:    price + value
//	FLAT_DEC:    price - value
func (m *PriceModifier) Apply(price decimal.Decimal) decimal.Decimal {
	switch m.Type {
	case PercentInc:
		return price.Mul(decimal.NewFromInt(1).Add(m.Value.Div(hundred)))
	case PercentDec:
		return price.Mul(decimal.NewFromInt(1).Sub(m.Value.Div(hundred)))
	case FlatInc:
		return price.Add(m.Value)
	case FlatDec:
		return price.Sub(m.Value)
	}
	return price
}

// SelectForApplication turns the gathered applicable modifiers into the
// final application order. Stackable modifiers all apply; non-stackable
// modifiers compete within their AppliesTo category, and only the one with
// the largest value survives (for DEC types the biggest discount wins; ties
// keep the first encountered). The combined list is then stably sorted by
// ascending priority, which is the sole inter-modifier ordering key.
func SelectForApplication(mods []*PriceModifier) []*PriceModifier {
	stackable := make([]*PriceModifier, 0, len(mods))
	bestPerCategory := make(map[AppliesTo]*PriceModifier)
	categoryOrder := make([]AppliesTo, 0)

	for _, m := range mods {
		if m.IsStackable {
			stackable = append(stackable, m)
			continue
		}
		best, ok := bestPerCategory[m.AppliesTo]
		if !ok {
			bestPerCategory[m.AppliesTo] = m
			categoryOrder = append(categoryOrder, m.AppliesTo)
			continue
		}
		if m.Value.GreaterThan(best.Value) {
			bestPerCategory[m.AppliesTo] = m
		}
	}

	selected := make([]*PriceModifier, 0, len(stackable)+len(categoryOrder))
	selected = append(selected, stackable...)
	for _, cat := range categoryOrder {
		selected = append(selected, bestPerCategory[cat])
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority < selected[j].Priority
	})
	return selected
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceModifier_Validate(t *testing.T) {
	t.Run("valid global modifier", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesGlobal, Type: PercentDec, Value: decimal.NewFromInt(10)}
		assert.NoError(t, m.Validate())
	})

	t.Run("negative value rejected", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesGlobal, Type: FlatInc, Value: decimal.NewFromInt(-1)}
		assert.ErrorIs(t, m.Validate(), ErrInvalidModifierValue)
	})

	t.Run("percentage over 100 rejected", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesGlobal, Type: PercentDec, Value: decimal.NewFromInt(101)}
		assert.ErrorIs(t, m.Validate(), ErrInvalidModifierValue)
	})

	t.Run("flat value over 100 allowed", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesGlobal, Type: FlatInc, Value: decimal.NewFromInt(500)}
		assert.NoError(t, m.Validate())
	})

	t.Run("scope reference demanded by appliesTo", func(t *testing.T) {
		cases := []struct {
			name string
			mod  PriceModifier
		}{
			{"zone without ref", PriceModifier{AppliesTo: AppliesZone, Type: FlatDec, Value: decimal.NewFromInt(5)}},
			{"segment without ref", PriceModifier{AppliesTo: AppliesSegment, Type: FlatDec, Value: decimal.NewFromInt(5)}},
			{"product without ref", PriceModifier{AppliesTo: AppliesProduct, Type: FlatDec, Value: decimal.NewFromInt(5)}},
			{"category without ref", PriceModifier{AppliesTo: AppliesCategory, Type: FlatDec, Value: decimal.NewFromInt(5)}},
			{"attribute without pair", PriceModifier{AppliesTo: AppliesAttribute, Type: FlatDec, Value: decimal.NewFromInt(5), AttributeName: "brand"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, tc.mod.Validate(), ErrMissingScopeReference)
			})
		}
	})

	t.Run("combination requires a condition tree", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesCombination, Type: PercentDec, Value: decimal.NewFromInt(5)}
		assert.ErrorIs(t, m.Validate(), ErrMissingConditions)
	})

	t.Run("combination with invalid tree rejected", func(t *testing.T) {
		m := &PriceModifier{
			AppliesTo:  AppliesCombination,
			Type:       PercentDec,
			Value:      decimal.NewFromInt(5),
			Conditions: &ConditionNode{Field: "geo_zone", Op: Operator("LIKE"), Value: "x"},
		}
		assert.ErrorIs(t, m.Validate(), ErrInvalidConditionTree)
	})
}

func TestPriceModifier_IsValidAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)

	t.Run("no window is always valid", func(t *testing.T) {
		m := &PriceModifier{}
		assert.True(t, m.IsValidAt(now))
	})

	t.Run("window is inclusive on both ends", func(t *testing.T) {
		m := &PriceModifier{ValidFrom: &from, ValidTo: &to}
		assert.True(t, m.IsValidAt(from))
		assert.True(t, m.IsValidAt(to))
		assert.False(t, m.IsValidAt(from.Add(-time.Second)))
		assert.False(t, m.IsValidAt(to.Add(time.Second)))
	})
}

func TestPriceModifier_AppliesToContext(t *testing.T) {
	ctx := &PricingContext{
		ProductID:     "prod-1",
		GeoZoneID:     "zone-blr",
		SegmentID:     "seg-wholesale",
		CategoryID:    "cat-grocery",
		SubcategoryID: "cat-staples",
		Attributes:    map[string]string{"brand": "acme"},
	}

	t.Run("global always applies", func(t *testing.T) {
		m := &PriceModifier{AppliesTo: AppliesGlobal}
		assert.True(t, m.AppliesToContext(ctx))
	})

	t.Run("zone matches its reference", func(t *testing.T) {
		assert.True(t, (&PriceModifier{AppliesTo: AppliesZone, GeoZoneID: "zone-blr"}).AppliesToContext(ctx))
		assert.False(t, (&PriceModifier{AppliesTo: AppliesZone, GeoZoneID: "zone-del"}).AppliesToContext(ctx))
	})

	t.Run("category matches category or subcategory", func(t *testing.T) {
		assert.True(t, (&PriceModifier{AppliesTo: AppliesCategory, CategoryID: "cat-grocery"}).AppliesToContext(ctx))
		assert.True(t, (&PriceModifier{AppliesTo: AppliesCategory, CategoryID: "cat-staples"}).AppliesToContext(ctx))
		assert.False(t, (&PriceModifier{AppliesTo: AppliesCategory, CategoryID: "cat-dairy"}).AppliesToContext(ctx))
	})

	t.Run("attribute matching is exact string equality", func(t *testing.T) {
		assert.True(t, (&PriceModifier{AppliesTo: AppliesAttribute, AttributeName: "brand", AttributeValue: "acme"}).AppliesToContext(ctx))
		assert.False(t, (&PriceModifier{AppliesTo: AppliesAttribute, AttributeName: "brand", AttributeValue: "Acme"}).AppliesToContext(ctx))
	})

	t.Run("combination evaluates its tree", func(t *testing.T) {
		m := &PriceModifier{
			AppliesTo: AppliesCombination,
			Conditions: &ConditionNode{And: []*ConditionNode{
				{Field: FieldGeoZone, Op: OpEquals, Value: "zone-blr"},
				{Field: FieldUserSegment, Op: OpEquals, Value: "seg-wholesale"},
			}},
		}
		assert.True(t, m.AppliesToContext(ctx))
	})
}

func TestPriceModifier_Apply(t *testing.T) {
	price := decimal.NewFromInt(200)

	cases := []struct {
		name     string
		modType  ModifierType
		value    int64
		expected string
	}{
		{"percent increase", PercentInc, 10, "220"},
		{"percent decrease", PercentDec, 15, "170"},
		{"flat increase", FlatInc, 30, "230"},
		{"flat decrease", FlatDec, 50, "150"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &PriceModifier{Type: tc.modType, Value: decimal.NewFromInt(tc.value)}
			assert.True(t, m.Apply(price).Equal(decimal.RequireFromString(tc.expected)))
		})
	}
}

func TestSelectForApplication(t *testing.T) {
	mod := func(id string, stackable bool, appliesTo AppliesTo, value int64, priority int64) *PriceModifier {
		return &PriceModifier{
			ID:          id,
			AppliesTo:   appliesTo,
			Type:        PercentDec,
			Value:       decimal.NewFromInt(value),
			IsStackable: stackable,
			Priority:    priority,
		}
	}

	t.Run("biggest discount wins among non-stackable in a category", func(t *testing.T) {
		mods := []*PriceModifier{
			mod("ten", false, AppliesSegment, 10, 1),
			mod("fifteen", false, AppliesSegment, 15, 2),
		}

		selected := SelectForApplication(mods)
		require.Len(t, selected, 1)
		assert.Equal(t, "fifteen", selected[0].ID)
	})

	t.Run("ties keep the first encountered", func(t *testing.T) {
		mods := []*PriceModifier{
			mod("first", false, AppliesZone, 10, 1),
			mod("second", false, AppliesZone, 10, 1),
		}

		selected := SelectForApplication(mods)
		require.Len(t, selected, 1)
		assert.Equal(t, "first", selected[0].ID)
	})

	t.Run("non-stackable compete only within their category", func(t *testing.T) {
		mods := []*PriceModifier{
			mod("zone", false, AppliesZone, 10, 1),
			mod("segment", false, AppliesSegment, 20, 2),
		}

		selected := SelectForApplication(mods)
		assert.Len(t, selected, 2)
	})

	t.Run("stackable all apply alongside the category winners", func(t *testing.T) {
		mods := []*PriceModifier{
			mod("stack-a", true, AppliesGlobal, 5, 3),
			mod("stack-b", true, AppliesGlobal, 5, 4),
			mod("loser", false, AppliesZone, 10, 1),
			mod("winner", false, AppliesZone, 25, 2),
		}

		selected := SelectForApplication(mods)
		require.Len(t, selected, 3)
	})

	t.Run("final order is ascending priority, stable", func(t *testing.T) {
		mods := []*PriceModifier{
			mod("late", true, AppliesGlobal, 5, 9),
			mod("early", true, AppliesZone, 5, 1),
			mod("mid-a", true, AppliesSegment, 5, 4),
			mod("mid-b", true, AppliesProduct, 5, 4),
		}

		selected := SelectForApplication(mods)
		require.Len(t, selected, 4)
		assert.Equal(t, "early", selected[0].ID)
		assert.Equal(t, "mid-a", selected[1].ID)
		assert.Equal(t, "mid-b", selected[2].ID)
		assert.Equal(t, "late", selected[3].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, SelectForApplication(nil))
	})
}

package check_conditions

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	q := NewQuery()

	t.Run("nested tree against a full context", func(t *testing.T) {
		tree := json.RawMessage(`{
			"AND": [
				{"field": "geo_zone", "operator": "EQUALS", "value": "zone-blr"},
				{"OR": [
					{"field": "user_segment", "operator": "EQUALS", "value": "seg-wholesale"},
					{"field": "quantity", "operator": "GT", "value": 100}
				]}
			]
		}`)

		got, err := q.Evaluate(ctx, &EvaluateRequest{
			Tree:      tree,
			GeoZoneID: "zone-blr",
			SegmentID: "seg-retail",
			Quantity:  150,
		})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("missing context field evaluates false, not an error", func(t *testing.T) {
		tree := json.RawMessage(`{"field": "category", "operator": "EQUALS", "value": "cat-grocery"}`)

		got, err := q.Evaluate(ctx, &EvaluateRequest{Tree: tree})
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("malformed tree is a validation error", func(t *testing.T) {
		_, err := q.Evaluate(ctx, &EvaluateRequest{Tree: json.RawMessage(`{"AND": [], "OR": []}`)})
		assert.ErrorIs(t, err, domain.ErrInvalidConditionTree)
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	q := NewQuery()

	t.Run("well-formed tree is valid", func(t *testing.T) {
		tree := json.RawMessage(`{
			"NOT": {"field": "brand", "operator": "IN", "value": ["acme", "generic"]}
		}`)

		result, err := q.Validate(ctx, &ValidateRequest{Tree: tree})
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("unknown operator reported with its path", func(t *testing.T) {
		tree := json.RawMessage(`{
			"AND": [
				{"field": "geo_zone", "operator": "LIKE", "value": "zone-%"}
			]
		}`)

		result, err := q.Validate(ctx, &ValidateRequest{Tree: tree})
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "$.AND[0]")
	})

	t.Run("unparsable tree reports instead of failing", func(t *testing.T) {
		result, err := q.Validate(ctx, &ValidateRequest{Tree: json.RawMessage(`not json`)})
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.NotEmpty(t, result.Errors)
	})
}

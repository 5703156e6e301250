package check_conditions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

// EvaluateRequest carries a condition tree plus the runtime context to
// evaluate it against.
type EvaluateRequest struct {
	Tree json.RawMessage

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

// ValidateRequest carries a condition tree to check structurally.
type ValidateRequest struct {
	Tree json.RawMessage
}

// Query handles condition evaluation and validation for admin tooling.
// It is stateless; both operations are pure functions of their input.
type Query struct{}

// NewQuery creates a new check conditions query.
func NewQuery() *Query {
	return &Query{}
}

// Evaluate parses the tree and runs it against the assembled context.
// A tree that does not parse is a validation error; a parsed tree never
// fails — missing fields evaluate vacuously false.
func (q *Query) Evaluate(ctx context.Context, req *EvaluateRequest) (bool, error) {
	node, err := domain.ParseConditions(req.Tree)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrInvalidConditionTree, err)
	}

	pctx := &domain.PricingContext{
		ProductID:     req.ProductID,
		GeoZoneID:     req.GeoZoneID,
		SegmentID:     req.SegmentID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Attributes:    req.Attributes,
		Quantity:      req.Quantity,
		BasePrice:     req.BasePrice,
		Extra:         req.Extra,
	}
	return node.Evaluate(pctx), nil
}

// Validate walks the tree and reports every structural problem with its
// path. A tree that does not even parse reports the parse error.
func (q *Query) Validate(ctx context.Context, req *ValidateRequest) (*domain.ValidationResult, error) {
	node, err := domain.ParseConditions(req.Tree)
	if err != nil {
		return &domain.ValidationResult{
			IsValid: false,
			Errors:  []string{err.Error()},
		}, nil
	}
	result := node.Validate()
	return &result, nil
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/check_conditions"
)

// ConditionsHandler handles condition tree evaluation and validation.
type ConditionsHandler struct {
	query *check_conditions.Query
}

// NewConditionsHandler creates a new conditions handler.
func NewConditionsHandler(query *check_conditions.Query) *ConditionsHandler {
	return &ConditionsHandler{query: query}
}

// EvaluateRequest carries the tree plus the runtime context fields.
type EvaluateRequest struct {
	Tree    json.RawMessage `json:"tree"`
	Context struct {
		ProductID     string            `json:"productId,omitempty"`
		ZoneID        string            `json:"zoneId,omitempty"`
		SegmentID     string            `json:"segmentId,omitempty"`
		CategoryID    string            `json:"categoryId,omitempty"`
		SubcategoryID string            `json:"subcategoryId,omitempty"`
		Attributes    map[string]string `json:"attributes,omitempty"`
		Quantity      int64             `json:"quantity,omitempty"`
		BasePrice     decimal.Decimal   `json:"basePrice,omitempty"`
		Extra         map[string]any    `json:"extra,omitempty"`
	} `json:"context"`
}

// EvaluateResponse is the boolean verdict.
type EvaluateResponse struct {
	Result bool `json:"result"`
}

// Evaluate handles POST /api/v1/conditions/evaluate requests.
func (h *ConditionsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Tree) == 0 {
		writeError(w, http.StatusBadRequest, "tree is required")
		return
	}

	result, err := h.query.Evaluate(r.Context(), &check_conditions.EvaluateRequest{
		Tree:          body.Tree,
		ProductID:     body.Context.ProductID,
		GeoZoneID:     body.Context.ZoneID,
		SegmentID:     body.Context.SegmentID,
		CategoryID:    body.Context.CategoryID,
		SubcategoryID: body.Context.SubcategoryID,
		Attributes:    body.Context.Attributes,
		Quantity:      body.Context.Quantity,
		BasePrice:     body.Context.BasePrice,
		Extra:         body.Context.Extra,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{Result: result})
}

// ValidateRequest carries the tree to check.
type ValidateRequest struct {
	Tree json.RawMessage `json:"tree"`
}

// Validate handles POST /api/v1/conditions/validate requests. A malformed
// tree is a valid request with isValid=false, not a 400.
func (h *ConditionsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Tree) == 0 {
		writeError(w, http.StatusBadRequest, "tree is required")
		return
	}

	result, err := h.query.Validate(r.Context(), &check_conditions.ValidateRequest{Tree: body.Tree})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

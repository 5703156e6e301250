package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_hierarchy"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/calculate_price"
)

// PriceHandler handles virtual price calculation requests.
type PriceHandler struct {
	calculator *calculate_price.Interactor
	hierarchy  *resolve_hierarchy.Query
}

// NewPriceHandler creates a new price handler.
func NewPriceHandler(calculator *calculate_price.Interactor, hierarchy *resolve_hierarchy.Query) *PriceHandler {
	return &PriceHandler{
		calculator: calculator,
		hierarchy:  hierarchy,
	}
}

// CalculateRequest is the HTTP body for a price calculation. Supplying a
// postal code resolves the zone hierarchy server-side; a zone id alone does
// a direct lookup instead.
type CalculateRequest struct {
	ProductID     string            `json:"productId"`
	ZoneID        string            `json:"zoneId,omitempty"`
	SegmentID     string            `json:"segmentId,omitempty"`
	PostalCode    string            `json:"postalCode,omitempty"`
	CategoryID    string            `json:"categoryId,omitempty"`
	SubcategoryID string            `json:"subcategoryId,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	Quantity      int64             `json:"quantity,omitempty"`
}

// CalculateResponse mirrors the calculation result. Price fields are null
// when the product is not available.
type CalculateResponse struct {
	IsAvailable       bool                `json:"isAvailable"`
	UnavailableReason string              `json:"unavailableReason,omitempty"`
	MasterPrice       *decimal.Decimal    `json:"masterPrice"`
	FinalPrice        *decimal.Decimal    `json:"finalPrice"`
	Adjustments       []domain.Adjustment `json:"adjustments"`
	ModifiersApplied  int                 `json:"modifiersApplied"`
	UsedZoneID        string              `json:"usedZoneId,omitempty"`
	UsedZoneLevel     string              `json:"usedZoneLevel,omitempty"`
}

// ServeHTTP handles POST /api/v1/price/calculate requests.
func (h *PriceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body CalculateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	req := &calculate_price.Request{
		ProductID:     body.ProductID,
		GeoZoneID:     body.ZoneID,
		SegmentID:     body.SegmentID,
		CategoryID:    body.CategoryID,
		SubcategoryID: body.SubcategoryID,
		Attributes:    body.Attributes,
		Quantity:      body.Quantity,
	}

	if body.PostalCode != "" {
		zones, err := h.hierarchy.Execute(r.Context(), &resolve_hierarchy.Request{PostalCode: body.PostalCode})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		req.GeoZoneHierarchy = zones
		if body.ZoneID == "" && len(zones) > 0 {
			req.GeoZoneID = zones[0].ID
		}
	}

	calc, err := h.calculator.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := CalculateResponse{
		IsAvailable:       calc.IsAvailable,
		UnavailableReason: calc.UnavailableReason,
		Adjustments:       calc.Adjustments,
		ModifiersApplied:  calc.ModifiersApplied,
		UsedZoneID:        calc.UsedZoneID,
		UsedZoneLevel:     calc.UsedZoneLevel,
	}
	if resp.Adjustments == nil {
		resp.Adjustments = []domain.Adjustment{}
	}
	if calc.IsAvailable {
		master := calc.MasterPrice
		final := calc.FinalPrice
		resp.MasterPrice = &master
		resp.FinalPrice = &final
	}
	writeJSON(w, http.StatusOK, resp)
}

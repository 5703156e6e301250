package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/remove_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/set_price"
)

// AdminHandler handles admin price-setting operations.
type AdminHandler struct {
	setter  *set_price.Interactor
	remover *remove_price.Interactor
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(setter *set_price.Interactor, remover *remove_price.Interactor) *AdminHandler {
	return &AdminHandler{
		setter:  setter,
		remover: remover,
	}
}

// SetPriceRequest writes a product price at a (zone, segment) scope.
type SetPriceRequest struct {
	ProductID     string          `json:"productId"`
	ZoneID        string          `json:"zoneId,omitempty"`
	SegmentID     string          `json:"segmentId,omitempty"`
	NewPrice      decimal.Decimal `json:"newPrice"`
	ChangedBy     string          `json:"changedBy"`
	ChangedReason string          `json:"changedReason,omitempty"`
}

// SetPrice handles PUT /api/v1/prices requests. A 409 response carries the
// conflict report and asks the caller to resolve explicitly.
func (h *AdminHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	var body SetPriceRequest
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := h.setter.Execute(r.Context(), &set_price.Request{
		ProductID:     body.ProductID,
		ZoneID:        body.ZoneID,
		SegmentID:     body.SegmentID,
		NewPrice:      body.NewPrice,
		ChangedBy:     body.ChangedBy,
		ChangedReason: body.ChangedReason,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if resp.RequiresResolution {
		writeJSON(w, http.StatusConflict, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RemovePrice handles DELETE /api/v1/prices requests. Scope comes from
// query parameters; removing a missing price succeeds.
func (h *AdminHandler) RemovePrice(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	productID := query.Get("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	err := h.remover.Execute(r.Context(), &remove_price.Request{
		ProductID: productID,
		ZoneID:    query.Get("zoneId"),
		SegmentID: query.Get("segmentId"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

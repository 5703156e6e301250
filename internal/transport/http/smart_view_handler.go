package http

import (
	"net/http"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/smart_view"
)

// SmartViewHandler handles the admin pricing matrix view.
type SmartViewHandler struct {
	query *smart_view.Query
}

// NewSmartViewHandler creates a new smart view handler.
func NewSmartViewHandler(query *smart_view.Query) *SmartViewHandler {
	return &SmartViewHandler{query: query}
}

// ServeHTTP handles GET /api/v1/smart-view requests. The present filters
// pick the view shape.
func (h *SmartViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := h.query.Execute(r.Context(), &smart_view.Request{
		ProductID: query.Get("productId"),
		ZoneID:    query.Get("zoneId"),
		SegmentID: query.Get("segmentId"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/detect_conflicts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/resolve_conflict"
)

// ConflictsHandler handles conflict detection and resolution requests.
type ConflictsHandler struct {
	detector *detect_conflicts.Interactor
	resolver *resolve_conflict.Interactor
}

// NewConflictsHandler creates a new conflicts handler.
func NewConflictsHandler(detector *detect_conflicts.Interactor, resolver *resolve_conflict.Interactor) *ConflictsHandler {
	return &ConflictsHandler{
		detector: detector,
		resolver: resolver,
	}
}

// DetectRequest proposes a price at a (zone, segment) scope.
type DetectRequest struct {
	ProductID string          `json:"productId"`
	ZoneID    string          `json:"zoneId,omitempty"`
	SegmentID string          `json:"segmentId,omitempty"`
	NewPrice  decimal.Decimal `json:"newPrice"`
}

// Detect handles POST /api/v1/conflicts/detect requests.
func (h *ConflictsHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var body DetectRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	resp, err := h.detector.Execute(r.Context(), &detect_conflicts.Request{
		ProductID: body.ProductID,
		ZoneID:    body.ZoneID,
		SegmentID: body.SegmentID,
		NewPrice:  body.NewPrice,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ResolveRequest applies a strategy to the conflicts of a proposed price.
type ResolveRequest struct {
	ResolutionID  string          `json:"resolutionId"`
	ProductID     string          `json:"productId"`
	ZoneID        string          `json:"zoneId,omitempty"`
	SegmentID     string          `json:"segmentId,omitempty"`
	NewPrice      decimal.Decimal `json:"newPrice"`
	ChangedBy     string          `json:"changedBy"`
	ChangedReason string          `json:"changedReason,omitempty"`
}

// Resolve handles POST /api/v1/conflicts/resolve requests.
func (h *ConflictsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var body ResolveRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	resp, err := h.resolver.Execute(r.Context(), &resolve_conflict.Request{
		ResolutionID:  body.ResolutionID,
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
	writeJSON(w, http.StatusOK, resp)
}

package http

import (
	"net/http"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_hierarchy"
)

// GeoZonesHandler handles geo zone hierarchy resolution requests.
type GeoZonesHandler struct {
	query *resolve_hierarchy.Query
}

// NewGeoZonesHandler creates a new geo zones handler.
func NewGeoZonesHandler(query *resolve_hierarchy.Query) *GeoZonesHandler {
	return &GeoZonesHandler{query: query}
}

// ZoneDTO is one zone in the resolved hierarchy.
type ZoneDTO struct {
	ZoneID   string `json:"zoneId"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Priority int64  `json:"priority"`
}

// ResolveHierarchyResponse is the ordered hierarchy, most specific first.
type ResolveHierarchyResponse struct {
	Zones []ZoneDTO `json:"zones"`
}

// ServeHTTP handles GET /api/v1/geozones/resolve requests. A postal code
// matching no zone returns an empty list, not an error.
func (h *GeoZonesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	postalCode := r.URL.Query().Get("postalCode")
	if postalCode == "" {
		writeError(w, http.StatusBadRequest, "postalCode is required")
		return
	}

	zones, err := h.query.Execute(r.Context(), &resolve_hierarchy.Request{PostalCode: postalCode})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := ResolveHierarchyResponse{Zones: make([]ZoneDTO, 0, len(zones))}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, ZoneDTO{
			ZoneID:   z.ID,
			Name:     z.Name,
			Level:    z.Level,
			Priority: z.Priority,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

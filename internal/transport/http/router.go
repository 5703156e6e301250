package http

import "net/http"

// Handlers bundles everything the router wires up.
type Handlers struct {
	Price      *PriceHandler
	Conflicts  *ConflictsHandler
	Admin      *AdminHandler
	SmartView  *SmartViewHandler
	GeoZones   *GeoZonesHandler
	Conditions *ConditionsHandler
	Events     *EventsHandler
}

// NewRouter builds the HTTP mux for the pricing API.
func NewRouter(h *Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/price/calculate", h.Price)
	mux.HandleFunc("POST /api/v1/conflicts/detect", h.Conflicts.Detect)
	mux.HandleFunc("POST /api/v1/conflicts/resolve", h.Conflicts.Resolve)
	mux.HandleFunc("PUT /api/v1/prices", h.Admin.SetPrice)
	mux.HandleFunc("DELETE /api/v1/prices", h.Admin.RemovePrice)
	mux.Handle("GET /api/v1/smart-view", h.SmartView)
	mux.Handle("GET /api/v1/geozones/resolve", h.GeoZones)
	mux.HandleFunc("POST /api/v1/conditions/evaluate", h.Conditions.Evaluate)
	mux.HandleFunc("POST /api/v1/conditions/validate", h.Conditions.Validate)
	mux.Handle("GET /api/v1/events", h.Events)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

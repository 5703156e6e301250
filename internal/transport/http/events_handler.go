package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/list_events"
)

// EventsHandler handles HTTP requests for outbox events.
type EventsHandler struct {
	query *list_events.Query
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(query *list_events.Query) *EventsHandler {
	return &EventsHandler{query: query}
}

// Event represents an outbox event in the HTTP response.
type Event struct {
	EventID     string  `json:"eventId"`
	EventType   string  `json:"eventType"`
	AggregateID string  `json:"aggregateId"`
	Payload     string  `json:"payload"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	ProcessedAt *string `json:"processedAt,omitempty"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"totalCount"`
}

// ServeHTTP handles GET /api/v1/events requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &list_events.Request{
		EventType:   query.Get("eventType"),
		AggregateID: query.Get("aggregateId"),
		Status:      query.Get("status"),
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	events, total, err := h.query.Execute(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := ListEventsResponse{
		Events:     make([]Event, 0, len(events)),
		TotalCount: total,
	}
	for _, e := range events {
		event := Event{
			EventID:     e.EventID,
			EventType:   e.EventType,
			AggregateID: e.AggregateID,
			Payload:     e.Payload,
			Status:      e.Status,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.ProcessedAt != nil {
			processedAt := e.ProcessedAt.Format(time.RFC3339)
			event.ProcessedAt = &processedAt
		}
		resp.Events = append(resp.Events, event)
	}
	writeJSON(w, http.StatusOK, resp)
}

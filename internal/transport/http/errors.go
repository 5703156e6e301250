package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeDomainError converts domain errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoMasterBook):
		writeError(w, http.StatusNotFound, "no master price book exists; the system is not bootstrapped")

	case errors.Is(err, domain.ErrNoMasterPrice):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrBookNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrZoneNotFound),
		errors.Is(err, domain.ErrSegmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrUnknownResolutionStrategy),
		errors.Is(err, domain.ErrInvalidBasePrice),
		errors.Is(err, domain.ErrInvalidModifierValue),
		errors.Is(err, domain.ErrMissingScopeReference),
		errors.Is(err, domain.ErrMissingConditions),
		errors.Is(err, domain.ErrInvalidConditionTree):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrSystemSegment):
		writeError(w, http.StatusForbidden, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// decodeBody parses a JSON request body into dst, reporting a 400 itself
// when the body does not parse. The bool result tells the handler whether
// to continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

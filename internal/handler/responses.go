package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stationchief/station-backend/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserPayload is the identity snapshot echoed to the client.
type UserPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StateResponse is the body of GET /state.
type StateResponse struct {
	User      UserPayload        `json:"user"`
	Resources domain.Resources   `json:"resources"`
	Daily     domain.DailyStatus `json:"daily"`
}

// ClaimResponse is the body of POST /daily/claim.
type ClaimResponse struct {
	Error     string             `json:"error,omitempty"`
	Resources domain.Resources   `json:"resources"`
	Daily     domain.DailyStatus `json:"daily"`
}

// SaveResponse is the body of POST /save.
type SaveResponse struct {
	State domain.GameState `json:"state"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a machine-readable error code in the standard envelope
func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, ErrorResponse{Error: code})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/player"
)

// SaveRequest wraps the client-submitted partial state. The patch itself is
// decoded strictly in a second pass so unknown categories are rejected.
type SaveRequest struct {
	State json.RawMessage `json:"state" validate:"required"`
}

// HandleSave merges a partial GameState patch onto the server copy and
// returns the normalized result. Submitted values are schema-checked but not
// bounds-checked.
// @Summary Submit state patch
// @Accept json
// @Produce json
// @Success 200 {object} SaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /save [post]
func HandleSave(playerSvc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		user, ok := UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, CodeMissingInitData)
			return
		}

		var req SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Unparsable save body", "error", err)
			respondError(w, http.StatusBadRequest, CodeInvalidPayload)
			return
		}
		// An explicit null survives RawMessage decoding; it is a missing
		// patch, not an empty one.
		if string(req.State) == "null" {
			req.State = nil
		}
		if err := GetValidator().ValidateStruct(&req); err != nil {
			respondError(w, http.StatusBadRequest, CodeInvalidPayload)
			return
		}

		patch, err := domain.DecodeStatePatch(req.State)
		if err != nil {
			log.Warn("Rejected state patch", "error", err)
			respondError(w, http.StatusBadRequest, CodeInvalidPayload)
			return
		}

		p, err := playerSvc.SavePatch(r.Context(), user, patch)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPayload) {
				respondError(w, http.StatusBadRequest, CodeInvalidPayload)
				return
			}
			log.Error("Save failed", "error", err, "tg_id", user.ID)
			respondError(w, http.StatusInternalServerError, CodeInternalError)
			return
		}

		respondJSON(w, http.StatusOK, SaveResponse{State: p.State})
	}
}

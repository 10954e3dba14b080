package handler

import (
	"net/http"

	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/player"
)

// HandleGetState returns the authoritative snapshot for the calling player:
// identity, resources after offline accrual, and daily-reward status. The
// record is created on first contact.
// @Summary Fetch player state
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 401 {object} ErrorResponse
// @Router /state [get]
func HandleGetState(playerSvc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		user, ok := UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, CodeMissingInitData)
			return
		}

		p, daily, err := playerSvc.SyncState(r.Context(), user)
		if err != nil {
			log.Error("State sync failed", "error", err)
			respondError(w, http.StatusInternalServerError, CodeInternalError)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{
			User: UserPayload{
				ID:        user.ID,
				Username:  user.Username,
				FirstName: user.FirstName,
				LastName:  user.LastName,
			},
			Resources: p.State.Resources,
			Daily:     daily,
		})
	}
}

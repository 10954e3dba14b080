package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/metrics"
	"github.com/stationchief/station-backend/internal/player"
)

// HandleClaimDaily claims today's login reward. Claiming twice on one
// calendar day returns 409 with the untouched resources and status, so the
// client can re-render without a second round trip.
// @Summary Claim daily reward
// @Produce json
// @Success 200 {object} ClaimResponse
// @Failure 409 {object} ClaimResponse
// @Failure 401 {object} ErrorResponse
// @Router /daily/claim [post]
func HandleClaimDaily(playerSvc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		user, ok := UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, CodeMissingInitData)
			return
		}

		p, daily, err := playerSvc.ClaimDaily(r.Context(), user)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyClaimed) {
				respondJSON(w, http.StatusConflict, ClaimResponse{
					Error:     CodeAlreadyClaimed,
					Resources: p.State.Resources,
					Daily:     daily,
				})
				return
			}
			log.Error("Daily claim failed", "error", err)
			respondError(w, http.StatusInternalServerError, CodeInternalError)
			return
		}

		metrics.DailyRewardsClaimed.WithLabelValues(strconv.Itoa(p.DailyStreak)).Inc()

		respondJSON(w, http.StatusOK, ClaimResponse{
			Resources: p.State.Resources,
			Daily:     daily,
		})
	}
}

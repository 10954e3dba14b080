package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/handler"
)

func TestHandleClaimDaily_Success(t *testing.T) {
	svc := &MockPlayerService{}
	p := testPlayer()
	p.State.Resources.Crystals = 103
	p.DailyStreak = 3
	status := domain.DailyStatus{Available: false, Streak: 3, TodayDay: 3, RewardCrystals: 3}
	svc.On("ClaimDaily", mock.Anything, testUser).Return(p, status, nil)

	w := httptest.NewRecorder()
	handler.HandleClaimDaily(svc)(w, authedRequest("POST", "/daily/claim", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, int64(103), resp.Resources.Crystals)
	assert.Equal(t, status, resp.Daily)
	svc.AssertExpectations(t)
}

func TestHandleClaimDaily_AlreadyClaimed(t *testing.T) {
	svc := &MockPlayerService{}
	p := testPlayer()
	p.State.Resources.Crystals = 101
	status := domain.DailyStatus{Available: false, Streak: 1, TodayDay: 1, RewardCrystals: 1}
	svc.On("ClaimDaily", mock.Anything, testUser).Return(p, status, domain.ErrAlreadyClaimed)

	w := httptest.NewRecorder()
	handler.HandleClaimDaily(svc)(w, authedRequest("POST", "/daily/claim", nil))

	require.Equal(t, http.StatusConflict, w.Code)

	var resp handler.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, handler.CodeAlreadyClaimed, resp.Error)
	assert.Equal(t, int64(101), resp.Resources.Crystals, "conflict still reports stored resources")
	assert.Equal(t, status, resp.Daily)
}

func TestHandleClaimDaily_NoAuthContext(t *testing.T) {
	svc := &MockPlayerService{}

	req := httptest.NewRequest("POST", "/daily/claim", nil)
	w := httptest.NewRecorder()
	handler.HandleClaimDaily(svc)(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ClaimDaily", mock.Anything, mock.Anything)
}

func TestHandleClaimDaily_ServiceError(t *testing.T) {
	svc := &MockPlayerService{}
	svc.On("ClaimDaily", mock.Anything, testUser).Return(nil, domain.DailyStatus{}, assert.AnError)

	w := httptest.NewRecorder()
	handler.HandleClaimDaily(svc)(w, authedRequest("POST", "/daily/claim", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), handler.CodeInternalError)
}

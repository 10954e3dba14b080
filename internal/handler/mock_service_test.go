package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stationchief/station-backend/internal/domain"
)

// MockPlayerService mocks player.Service for handler tests.
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) SyncState(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error) {
	args := m.Called(ctx, user)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Get(1).(domain.DailyStatus), args.Error(2)
}

func (m *MockPlayerService) ClaimDaily(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error) {
	args := m.Called(ctx, user)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Get(1).(domain.DailyStatus), args.Error(2)
}

func (m *MockPlayerService) SavePatch(ctx context.Context, user domain.TelegramUser, patch *domain.StatePatch) (*domain.Player, error) {
	args := m.Called(ctx, user, patch)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

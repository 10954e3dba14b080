package player

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stationchief/station-backend/internal/domain"
)

// MockRepository is a testify mock of Repository for service tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, tgID int64) (*domain.Player, error) {
	args := m.Called(ctx, tgID)
	if p, ok := args.Get(0).(*domain.Player); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, p *domain.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, p *domain.Player, expectedVersion int64) error {
	args := m.Called(ctx, p, expectedVersion)
	return args.Error(0)
}

package player

import (
	"context"

	"github.com/stationchief/station-backend/internal/domain"
)

// Repository persists player rows keyed by Telegram id.
type Repository interface {
	// Get returns the row for tgID, or domain.ErrPlayerNotFound.
	Get(ctx context.Context, tgID int64) (*domain.Player, error)
	// Insert creates the row, or returns domain.ErrPlayerExists if another
	// writer created it first. It never duplicates a row.
	Insert(ctx context.Context, p *domain.Player) error
	// Update overwrites the full row if its stored version still equals
	// expectedVersion, bumping the version; otherwise it returns
	// domain.ErrVersionConflict and writes nothing.
	Update(ctx context.Context, p *domain.Player, expectedVersion int64) error
}

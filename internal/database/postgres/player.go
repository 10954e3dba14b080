package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stationchief/station-backend/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Get loads a player row by Telegram id. The stored state is decoded
// tolerantly: a corrupt payload is recovered category by category from
// defaults, never surfaced as an error.
func (r *PlayerRepository) Get(ctx context.Context, tgID int64) (*domain.Player, error) {
	query := `
		SELECT tg_id, username, first_name, last_name, photo_url,
		       created_at, last_login, last_tick, state_json,
		       daily_claim_date, daily_streak, version
		FROM players
		WHERE tg_id = $1
	`

	var (
		p         domain.Player
		stateJSON []byte
		claimDate *string
	)
	err := r.db.QueryRow(ctx, query, tgID).Scan(
		&p.TgID, &p.Username, &p.FirstName, &p.LastName, &p.PhotoURL,
		&p.CreatedAt, &p.LastLogin, &p.LastTick, &stateJSON,
		&claimDate, &p.DailyStreak, &p.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	p.State = domain.DecodeState(stateJSON)
	if claimDate != nil {
		p.DailyClaimDate = *claimDate
	}
	return &p, nil
}

// Insert creates the row for a new player. A concurrent insert for the same
// id loses cleanly: ON CONFLICT DO NOTHING plus domain.ErrPlayerExists, so a
// duplicate row can never appear.
func (r *PlayerRepository) Insert(ctx context.Context, p *domain.Player) error {
	stateJSON, err := p.State.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	query := `
		INSERT INTO players
			(tg_id, username, first_name, last_name, photo_url,
			 created_at, last_login, last_tick, state_json,
			 daily_claim_date, daily_streak, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (tg_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		p.TgID, p.Username, p.FirstName, p.LastName, p.PhotoURL,
		p.CreatedAt, p.LastLogin, p.LastTick, stateJSON,
		nullableDate(p.DailyClaimDate), p.DailyStreak, p.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerExists
	}
	return nil
}

// Update replaces the full row under compare-and-swap: the write only lands
// if the stored version still equals expectedVersion, and bumps it by one.
func (r *PlayerRepository) Update(ctx context.Context, p *domain.Player, expectedVersion int64) error {
	stateJSON, err := p.State.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	query := `
		UPDATE players
		SET username = $1, first_name = $2, last_name = $3, photo_url = $4,
		    last_login = $5, last_tick = $6, state_json = $7,
		    daily_claim_date = $8, daily_streak = $9, version = version + 1
		WHERE tg_id = $10 AND version = $11
	`
	tag, err := r.db.Exec(ctx, query,
		p.Username, p.FirstName, p.LastName, p.PhotoURL,
		p.LastLogin, p.LastTick, stateJSON,
		nullableDate(p.DailyClaimDate), p.DailyStreak,
		p.TgID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}

// nullableDate maps the empty claim-date key to SQL NULL.
func nullableDate(key string) *string {
	if key == "" {
		return nil
	}
	return &key
}

package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stationchief/station-backend/internal/daily"
	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/economy"
	"github.com/stationchief/station-backend/internal/logger"
	"github.com/stationchief/station-backend/internal/metrics"
)

// maxUpdateRetries bounds the optimistic-concurrency retry loop. Concurrent
// requests for the same player race on the row version; each conflict re-reads
// and re-applies the mutation instead of overwriting blindly.
const maxUpdateRetries = 3

// Service owns the player record lifecycle: get-or-create, offline accrual,
// daily claims and partial-state reconciliation. Every mutation goes through
// the same read-apply-compare-and-swap cycle.
type Service interface {
	// SyncState accrues offline income, refreshes the identity snapshot and
	// returns the persisted player with the current daily-reward status.
	SyncState(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error)

	// ClaimDaily claims today's login reward. On domain.ErrAlreadyClaimed the
	// returned player and status reflect the untouched stored record so the
	// caller can still render them.
	ClaimDaily(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error)

	// SavePatch merges a client patch onto the authoritative state and
	// persists the normalized result.
	SavePatch(ctx context.Context, user domain.TelegramUser, patch *domain.StatePatch) (*domain.Player, error)
}

type service struct {
	repo    Repository
	economy *economy.Engine
	daily   *daily.Tracker
	now     func() time.Time
}

// NewService creates the player service.
func NewService(repo Repository, engine *economy.Engine, tracker *daily.Tracker) Service {
	return &service{
		repo:    repo,
		economy: engine,
		daily:   tracker,
		now:     time.Now,
	}
}

func (s *service) SyncState(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error) {
	p, err := s.mutate(ctx, user, func(p *domain.Player, now time.Time) error {
		tick, gains := s.economy.Accrue(&p.State, p.LastTick, now)
		p.LastTick = tick
		if gains != nil {
			logger.FromContext(ctx).Debug("Offline income credited",
				"energy", gains.Energy,
				"metal", gains.Metal,
				"water", gains.Water,
				"food", gains.Food)
		}
		return nil
	})
	if err != nil {
		return nil, domain.DailyStatus{}, err
	}

	status := s.daily.Status(p.DailyClaimDate, p.DailyStreak, s.now())
	return p, status, nil
}

func (s *service) ClaimDaily(ctx context.Context, user domain.TelegramUser) (*domain.Player, domain.DailyStatus, error) {
	p, err := s.mutate(ctx, user, func(p *domain.Player, now time.Time) error {
		newStreak, reward, err := s.daily.Claim(p.DailyClaimDate, p.DailyStreak, now)
		if err != nil {
			return err
		}
		p.State.Resources.Crystals += reward
		p.DailyClaimDate = domain.DateKey(now)
		p.DailyStreak = newStreak
		p.LastTick = now
		return nil
	})
	if err != nil {
		if p != nil && errors.Is(err, domain.ErrAlreadyClaimed) {
			// Idempotent rejection: report the stored record untouched.
			return p, s.daily.Status(p.DailyClaimDate, p.DailyStreak, s.now()), err
		}
		return nil, domain.DailyStatus{}, err
	}

	logger.FromContext(ctx).Info("Daily reward claimed", "streak", p.DailyStreak)
	return p, s.daily.Status(p.DailyClaimDate, p.DailyStreak, s.now()), nil
}

func (s *service) SavePatch(ctx context.Context, user domain.TelegramUser, patch *domain.StatePatch) (*domain.Player, error) {
	return s.mutate(ctx, user, func(p *domain.Player, now time.Time) error {
		p.State = domain.Merge(p.State, patch)
		p.LastTick = now
		return nil
	})
}

// mutate runs the read-apply-CAS cycle. The identity snapshot and last_login
// refresh on every successful write. When apply itself fails the pre-write
// player is returned alongside the error; a version conflict retries the
// whole cycle against the fresh row.
func (s *service) mutate(ctx context.Context, user domain.TelegramUser, apply func(p *domain.Player, now time.Time) error) (*domain.Player, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		p, err := s.getOrCreate(ctx, user)
		if err != nil {
			return nil, err
		}

		now := s.now()
		if err := apply(p, now); err != nil {
			return p, err
		}

		p.RefreshIdentity(user)
		p.LastLogin = now

		if err := s.repo.Update(ctx, p, p.Version); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				metrics.VersionConflicts.Inc()
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to update player %d: %w", user.ID, err)
		}
		p.Version++
		return p, nil
	}
	return nil, fmt.Errorf("player %d update contended after %d attempts: %w", user.ID, maxUpdateRetries, lastErr)
}

// getOrCreate fetches the row for the user, creating it with defaults on the
// first authenticated contact. An insert race is resolved by re-reading the
// winner's row, so exactly one row ever exists per Telegram id.
func (s *service) getOrCreate(ctx context.Context, user domain.TelegramUser) (*domain.Player, error) {
	p, err := s.repo.Get(ctx, user.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to load player %d: %w", user.ID, err)
	}

	fresh := newPlayer(user, s.now())
	if err := s.repo.Insert(ctx, fresh); err != nil {
		if errors.Is(err, domain.ErrPlayerExists) {
			return s.repo.Get(ctx, user.ID)
		}
		return nil, fmt.Errorf("failed to create player %d: %w", user.ID, err)
	}

	metrics.PlayersCreated.Inc()
	logger.FromContext(ctx).Info("Player created", "username", user.Username)
	return fresh, nil
}

// newPlayer builds the default record for first contact.
func newPlayer(user domain.TelegramUser, now time.Time) *domain.Player {
	p := &domain.Player{
		TgID:      user.ID,
		CreatedAt: now,
		LastLogin: now,
		LastTick:  now,
		State:     domain.DefaultState(),
		Version:   1,
	}
	p.RefreshIdentity(user)
	return p
}

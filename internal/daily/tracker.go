package daily

import (
	"time"

	"github.com/stationchief/station-backend/internal/domain"
)

// RewardLadder lists crystals granted for streak days 1..7.
var RewardLadder = [StreakMax]int64{1, 2, 3, 4, 5, 6, 7}

// Tracker implements the 7-day login reward ladder. It is pure calendar
// arithmetic over (claim date, streak) pairs; persistence stays with the
// caller.
type Tracker struct{}

// NewTracker creates a Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Status reports the ladder position for display. Claimed today: nothing
// available, the shown day is the current streak day. Claimed yesterday: the
// next day is available. Any longer gap (or no claim ever): day 1 is
// available; the stored streak is only reset when the claim happens.
func (t *Tracker) Status(claimDate string, streak int, now time.Time) domain.DailyStatus {
	today := domain.DateKey(now)
	yesterday := domain.DateKey(now.AddDate(0, 0, -1))

	var day int
	switch claimDate {
	case yesterday:
		day = clampDay(streak + 1)
	case today:
		day = clampDay(streak)
	default:
		day = 1
	}

	return domain.DailyStatus{
		Available:      claimDate != today,
		Streak:         streak,
		TodayDay:       day,
		RewardCrystals: RewardLadder[day-1],
	}
}

// Claim resolves a claim attempt. Claiming twice on one calendar day fails
// with domain.ErrAlreadyClaimed and changes nothing. Otherwise the streak
// continues from yesterday or resets to day 1 (never 0), clamped to 7.
// The caller credits the reward and persists (today, newStreak).
func (t *Tracker) Claim(claimDate string, streak int, now time.Time) (newStreak int, reward int64, err error) {
	today := domain.DateKey(now)
	if claimDate == today {
		return 0, 0, domain.ErrAlreadyClaimed
	}

	if claimDate == domain.DateKey(now.AddDate(0, 0, -1)) {
		newStreak = clampDay(streak + 1)
	} else {
		newStreak = 1
	}
	return newStreak, RewardLadder[newStreak-1], nil
}

// clampDay keeps a ladder day within [1,7].
func clampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > StreakMax {
		return StreakMax
	}
	return day
}

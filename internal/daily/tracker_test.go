package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationchief/station-backend/internal/daily"
	"github.com/stationchief/station-backend/internal/domain"
)

var noon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func TestStatus(t *testing.T) {
	tracker := daily.NewTracker()
	today := domain.DateKey(noon)
	yesterday := domain.DateKey(noon.AddDate(0, 0, -1))

	tests := []struct {
		name      string
		claimDate string
		streak    int
		want      domain.DailyStatus
	}{
		{
			name:      "never claimed",
			claimDate: "",
			streak:    0,
			want:      domain.DailyStatus{Available: true, Streak: 0, TodayDay: 1, RewardCrystals: 1},
		},
		{
			name:      "claimed yesterday continues ladder",
			claimDate: yesterday,
			streak:    3,
			want:      domain.DailyStatus{Available: true, Streak: 3, TodayDay: 4, RewardCrystals: 4},
		},
		{
			name:      "claimed today shows current day",
			claimDate: today,
			streak:    5,
			want:      domain.DailyStatus{Available: false, Streak: 5, TodayDay: 5, RewardCrystals: 5},
		},
		{
			name:      "two day gap resets display to day 1",
			claimDate: domain.DateKey(noon.AddDate(0, 0, -2)),
			streak:    6,
			want:      domain.DailyStatus{Available: true, Streak: 6, TodayDay: 1, RewardCrystals: 1},
		},
		{
			name:      "yesterday at full streak stays capped",
			claimDate: yesterday,
			streak:    7,
			want:      domain.DailyStatus{Available: true, Streak: 7, TodayDay: 7, RewardCrystals: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracker.Status(tt.claimDate, tt.streak, noon))
		})
	}
}

func TestClaim_SevenConsecutiveDays(t *testing.T) {
	tracker := daily.NewTracker()

	claimDate := ""
	streak := 0
	var total int64

	for day := 1; day <= daily.StreakMax; day++ {
		now := noon.AddDate(0, 0, day-1)
		newStreak, reward, err := tracker.Claim(claimDate, streak, now)
		require.NoError(t, err)
		assert.Equal(t, day, newStreak, "day %d", day)
		assert.Equal(t, int64(day), reward, "day %d", day)

		claimDate = domain.DateKey(now)
		streak = newStreak
		total += reward
	}

	assert.Equal(t, int64(28), total, "full week pays exactly 28 crystals")
}

func TestClaim_EighthConsecutiveDayStaysCapped(t *testing.T) {
	tracker := daily.NewTracker()

	newStreak, reward, err := tracker.Claim(domain.DateKey(noon.AddDate(0, 0, -1)), 7, noon)
	require.NoError(t, err)
	assert.Equal(t, 7, newStreak)
	assert.Equal(t, int64(7), reward)
}

func TestClaim_MissedDayResetsToDayOne(t *testing.T) {
	tracker := daily.NewTracker()

	newStreak, reward, err := tracker.Claim(domain.DateKey(noon.AddDate(0, 0, -2)), 6, noon)
	require.NoError(t, err)
	assert.Equal(t, 1, newStreak, "reset lands on day 1, not day 0")
	assert.Equal(t, int64(1), reward)
}

func TestClaim_SameDayRejected(t *testing.T) {
	tracker := daily.NewTracker()

	_, _, err := tracker.Claim(domain.DateKey(noon), 2, noon)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaim_CalendarDayBoundary(t *testing.T) {
	tracker := daily.NewTracker()
	justBeforeMidnight := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	justAfterMidnight := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)

	newStreak, _, err := tracker.Claim("", 0, justBeforeMidnight)
	require.NoError(t, err)
	assert.Equal(t, 1, newStreak)

	// Two minutes later it is a fresh calendar day and the ladder continues.
	newStreak, reward, err := tracker.Claim(domain.DateKey(justBeforeMidnight), newStreak, justAfterMidnight)
	require.NoError(t, err)
	assert.Equal(t, 2, newStreak)
	assert.Equal(t, int64(2), reward)
}

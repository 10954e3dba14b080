package domain

import "time"

// TelegramUser is the identity embedded in verified init data.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// Player is the persisted record for one Telegram user. Exactly one row exists
// per TgID. Version backs the compare-and-swap update discipline: every write
// asserts the version it read and bumps it by one.
type Player struct {
	TgID      int64
	Username  string
	FirstName string
	LastName  string
	PhotoURL  string

	CreatedAt time.Time
	LastLogin time.Time
	// LastTick drives offline accrual and only ever advances forward.
	LastTick time.Time

	State GameState

	// DailyClaimDate is a UTC calendar-day key (YYYY-MM-DD), empty if the
	// player has never claimed. DailyStreak stays within [0,7].
	DailyClaimDate string
	DailyStreak    int

	Version int64
}

// RefreshIdentity updates the identity snapshot from a verified user.
func (p *Player) RefreshIdentity(user TelegramUser) {
	p.Username = user.Username
	p.FirstName = user.FirstName
	p.LastName = user.LastName
	p.PhotoURL = user.PhotoURL
}

// DailyStatus describes the login-reward ladder position shown to the client.
type DailyStatus struct {
	Available      bool  `json:"available"`
	Streak         int   `json:"streak"`
	TodayDay       int   `json:"todayDay"`
	RewardCrystals int64 `json:"rewardCrystals"`
}

// DateKey formats a time as the UTC calendar-day key used for daily claims.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

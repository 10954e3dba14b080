package economy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stationchief/station-backend/internal/domain"
	"github.com/stationchief/station-backend/internal/economy"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestProduction_LevelScaling(t *testing.T) {
	engine := economy.NewEngine()

	tests := []struct {
		name      string
		buildings map[string]int
		want      economy.Production
	}{
		{
			name:      "all level 1",
			buildings: map[string]int{"generator": 1, "mine": 1, "well": 1, "farm": 1},
			want:      economy.Production{Energy: 140, Metal: 90, Water: 70, Food: 60},
		},
		{
			name:      "absent buildings default to level 1",
			buildings: map[string]int{},
			want:      economy.Production{Energy: 140, Metal: 90, Water: 70, Food: 60},
		},
		{
			name:      "generator level 2 gives +25%",
			buildings: map[string]int{"generator": 2},
			want:      economy.Production{Energy: 175, Metal: 90, Water: 70, Food: 60},
		},
		{
			name:      "level 5 gives double",
			buildings: map[string]int{"mine": 5},
			want:      economy.Production{Energy: 140, Metal: 180, Water: 70, Food: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Production(tt.buildings))
		})
	}
}

func TestAccrue_GeneratorLevel2TwoHours(t *testing.T) {
	engine := economy.NewEngine()
	state := domain.DefaultState()
	state.Buildings["generator"] = 2
	prior := state.Resources.Energy

	now := baseTime.Add(2 * time.Hour)
	tick, gains := engine.Accrue(&state, baseTime, now)

	// 140 * 1.25 = 175/hr, floor(175*2) = 350
	assert.Equal(t, now, tick, "tick advances to now")
	assert.NotNil(t, gains)
	assert.Equal(t, int64(350), gains.Energy)
	assert.Equal(t, prior+350, state.Resources.Energy)
}

func TestAccrue_CapAtEightHours(t *testing.T) {
	engine := economy.NewEngine()

	capped := domain.DefaultState()
	_, cappedGains := engine.Accrue(&capped, baseTime, baseTime.Add(24*time.Hour))

	exact := domain.DefaultState()
	_, exactGains := engine.Accrue(&exact, baseTime, baseTime.Add(8*time.Hour))

	assert.Equal(t, exactGains, cappedGains, "24h offline credits the same as exactly 8h")
	assert.Equal(t, exact.Resources, capped.Resources)
}

func TestAccrue_BelowThresholdIsNoOp(t *testing.T) {
	engine := economy.NewEngine()
	state := domain.DefaultState()
	before := state.Resources

	tick, gains := engine.Accrue(&state, baseTime, baseTime.Add(30*time.Second))

	assert.Nil(t, gains)
	assert.Equal(t, before, state.Resources)
	assert.Equal(t, baseTime, tick, "tick does not advance on a no-op")
}

func TestAccrue_RapidRepeatCannotInflate(t *testing.T) {
	engine := economy.NewEngine()
	state := domain.DefaultState()

	// First real application consumes the window.
	now := baseTime.Add(2 * time.Hour)
	tick, gains := engine.Accrue(&state, baseTime, now)
	assert.NotNil(t, gains)

	// Two immediate re-ticks below the threshold change nothing.
	after := state.Resources
	for i := 0; i < 2; i++ {
		next, g := engine.Accrue(&state, tick, now.Add(time.Duration(i)*time.Second))
		assert.Nil(t, g)
		assert.Equal(t, tick, next)
		assert.Equal(t, after, state.Resources)
	}
}

func TestAccrue_ClockSkewBackwardsIsNoOp(t *testing.T) {
	engine := economy.NewEngine()
	state := domain.DefaultState()
	before := state.Resources

	tick, gains := engine.Accrue(&state, baseTime, baseTime.Add(-time.Hour))

	assert.Nil(t, gains)
	assert.Equal(t, before, state.Resources)
	assert.Equal(t, baseTime, tick)
}

func TestAccrue_ResourcesNeverNegative(t *testing.T) {
	engine := economy.NewEngine()
	state := domain.DefaultState()
	state.Resources = domain.Resources{}

	engine.Accrue(&state, baseTime, baseTime.Add(3*time.Hour))

	assert.GreaterOrEqual(t, state.Resources.Energy, int64(0))
	assert.GreaterOrEqual(t, state.Resources.Metal, int64(0))
	assert.GreaterOrEqual(t, state.Resources.Water, int64(0))
	assert.GreaterOrEqual(t, state.Resources.Food, int64(0))
	assert.GreaterOrEqual(t, state.Resources.Crystals, int64(0))
}

package economy

import (
	"math"
	"time"

	"github.com/stationchief/station-backend/internal/domain"
)

// Production is the per-resource hourly output for a set of buildings.
type Production struct {
	Energy float64
	Metal  float64
	Water  float64
	Food   float64
}

// Gains is the whole-unit amount credited by one offline accrual.
type Gains struct {
	Energy int64
	Metal  int64
	Water  int64
	Food   int64
}

// Engine computes production rates and offline income. Stateless; all ticking
// is lazy, derived from the stored last tick at read time.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Production returns hourly output for the given building levels. Each
// producible resource maps to exactly one building; an absent building
// produces at level 1.
func (e *Engine) Production(buildings map[string]int) Production {
	return Production{
		Energy: baseEnergyPerHour * levelMultiplier(buildings[buildingGenerator]),
		Metal:  baseMetalPerHour * levelMultiplier(buildings[buildingMine]),
		Water:  baseWaterPerHour * levelMultiplier(buildings[buildingWell]),
		Food:   baseFoodPerHour * levelMultiplier(buildings[buildingFarm]),
	}
}

// Accrue credits offline income for the window [lastTick, now], capped at
// OfflineCapHours. Below MinAccrualHours the call is a no-op: the state is
// untouched, no gains are reported and the tick does not advance, so rapid
// repeated calls cannot inflate income. On any real application the returned
// tick is now, which guarantees the same window is never credited twice.
func (e *Engine) Accrue(state *domain.GameState, lastTick, now time.Time) (time.Time, *Gains) {
	elapsed := now.Sub(lastTick).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	hours := math.Min(elapsed, OfflineCapHours)
	if hours <= MinAccrualHours {
		return lastTick, nil
	}

	production := e.Production(state.Buildings)
	gains := &Gains{
		Energy: int64(math.Floor(production.Energy * hours)),
		Metal:  int64(math.Floor(production.Metal * hours)),
		Water:  int64(math.Floor(production.Water * hours)),
		Food:   int64(math.Floor(production.Food * hours)),
	}

	state.Resources.Energy += gains.Energy
	state.Resources.Metal += gains.Metal
	state.Resources.Water += gains.Water
	state.Resources.Food += gains.Food

	return now, gains
}

// levelMultiplier scales base production by building level: +25% per level
// above 1. Level 0 (absent building) counts as level 1.
func levelMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + productionPerLevel*float64(level-1)
}

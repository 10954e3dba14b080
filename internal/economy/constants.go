package economy

const (
	// OfflineCapHours bounds how much idle time is ever credited.
	OfflineCapHours = 8.0
	// MinAccrualHours is the no-op threshold (~36 seconds); windows at or
	// below it are ignored entirely.
	MinAccrualHours = 0.01

	productionPerLevel = 0.25

	baseEnergyPerHour = 140.0
	baseMetalPerHour  = 90.0
	baseWaterPerHour  = 70.0
	baseFoodPerHour   = 60.0
)

// Producing building ids. One building per producible resource.
const (
	buildingGenerator = "generator"
	buildingMine      = "mine"
	buildingWell      = "well"
	buildingFarm      = "farm"
)

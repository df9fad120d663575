package blueprint

// Sizing policy. The algorithms only reference these names.
const (
	// AreaPerDemandUnit is the square footage reserved per unit of demand.
	AreaPerDemandUnit = 3.5

	// MinBaseArea is the smallest footprint ever planned, in square feet.
	MinBaseArea = 500000.0

	// FutureScaleMultiplier sizes the building for growth.
	FutureScaleMultiplier = 3.0

	// WarehouseAspectRatio is width:height of the building.
	WarehouseAspectRatio = 1.6
)

// Zone packing.
const (
	// ZoneAspectRatio keeps zones wider than tall regardless of the building ratio.
	ZoneAspectRatio = 1.5

	// ZoneRowHeight is the fixed vertical step when a row wraps.
	ZoneRowHeight = 200

	ZoneMargin           = 50
	ZoneGutter           = 40
	AreaPerCapacityUnit  = 100.0
	StaffAreaDivisor     = 1000.0
	MinZoneEfficiency    = 85.0
	ZoneEfficiencySpread = 10.0

	// MinZoneSize bounds manual zone dimensions on add.
	MinZoneSize = 20

	// MinResizeSize bounds zone dimensions on resize.
	MinResizeSize = 50
)

// Workforce.
const (
	BaseStaffRatio = 0.0008
	PeakMultiplier = 1.4
	HourlyRate     = 18
)

// Demand tiers. Low is strictly below LowTierCeiling, high strictly above HighTierFloor.
const (
	LowTierCeiling = 50000
	HighTierFloor  = 150000
)

const RackBaysPerLevel = 50

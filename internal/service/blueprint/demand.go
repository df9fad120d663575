package blueprint

import "rdc-blueprint/internal/storage"

// Aggregate reduces per-city demand to summary figures. An empty list yields
// a zero summary rather than a division by zero.
func Aggregate(cities []storage.CityDemand) storage.DemandSummary {
	summary := storage.DemandSummary{}

	for _, c := range cities {
		summary.TotalDemand += c.Demand
	}
	if top, ok := TopCity(cities); ok {
		summary.PeakDemand = top.Demand
		summary.TopCity = top.City
	}

	if len(cities) > 0 {
		summary.AverageDemand = float64(summary.TotalDemand) / float64(len(cities))
	}
	summary.DemandTier = Tier(summary.TotalDemand)

	return summary
}

func Tier(totalDemand int) storage.DemandTier {
	switch {
	case totalDemand < LowTierCeiling:
		return storage.TierLow
	case totalDemand > HighTierFloor:
		return storage.TierHigh
	default:
		return storage.TierMedium
	}
}

// TopCity returns the city with the highest demand, first one wins on ties.
func TopCity(cities []storage.CityDemand) (storage.CityDemand, bool) {
	if len(cities) == 0 {
		return storage.CityDemand{}, false
	}
	top := cities[0]
	for _, c := range cities[1:] {
		if c.Demand > top.Demand {
			top = c
		}
	}
	return top, true
}

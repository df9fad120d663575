package blueprint

import "math"

type Dimensions struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	BaseArea  float64 `json:"baseArea"`
	TotalArea float64 `json:"totalArea"`
	Location  string  `json:"location"`
}

// PlanDimensions sizes the building for totalDemand with room for future growth.
func PlanDimensions(totalDemand int, topCity string) Dimensions {
	baseArea := math.Max(MinBaseArea, float64(totalDemand)*AreaPerDemandUnit)
	futureArea := baseArea * FutureScaleMultiplier

	width := int(math.Ceil(math.Sqrt(futureArea * WarehouseAspectRatio)))
	height := int(math.Ceil(futureArea / float64(width)))

	return Dimensions{
		Width:     width,
		Height:    height,
		BaseArea:  baseArea,
		TotalArea: futureArea,
		Location:  topCity,
	}
}

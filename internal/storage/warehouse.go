package storage

type Warehouse struct {
	Name                  string  `json:"name"`
	Width                 int     `json:"width"`
	Height                int     `json:"height"`
	TotalArea             float64 `json:"totalArea"`
	Location              string  `json:"location"`
	Type                  string  `json:"type"`
	CalculatedFromData    bool    `json:"calculatedFromData"`
	DemandCapacity        int     `json:"demandCapacity"`
	FutureScaleMultiplier float64 `json:"futureScaleMultiplier"`
	OptimalLayout         string  `json:"optimalLayout,omitempty"`
}

// WarehousePatch carries user edits. Nil fields are left untouched.
type WarehousePatch struct {
	Name   *string `json:"name"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

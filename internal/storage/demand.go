package storage

type DemandTier string

const (
	TierLow    DemandTier = "low"
	TierMedium DemandTier = "medium"
	TierHigh   DemandTier = "high"
)

type CityDemand struct {
	City        string `json:"city"`
	Demand      int    `json:"demand"`
	TotalOrders int    `json:"total_orders,omitempty"`
}

// DemandSummary is derived from the city list and never edited directly.
type DemandSummary struct {
	TotalDemand   int        `json:"totalDemand"`
	PeakDemand    int        `json:"peakDemand"`
	AverageDemand float64    `json:"averageDemand"`
	DemandTier    DemandTier `json:"demandTier"`
	TopCity       string     `json:"topCity"`
}

type UploadedData struct {
	CitySummary []CityDemand `json:"city_summary"`
	TotalOrders int          `json:"total_orders"`
	TotalCities int          `json:"total_cities"`
}

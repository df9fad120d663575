package storage

import "time"

type SimulationMetrics struct {
	OverallEfficiency  float64 `json:"overallEfficiency"`
	ThroughputCapacity float64 `json:"throughputCapacity"`
	SpaceUtilization   float64 `json:"spaceUtilization"`
	LaborEfficiency    float64 `json:"laborEfficiency"`
	CostPerUnit        float64 `json:"costPerUnit"`
	ROI                float64 `json:"ROI"`
}

type ProcessAnalysis struct {
	Bottlenecks  []string `json:"bottlenecks"`
	Improvements []string `json:"improvements"`
}

type FutureReadiness struct {
	CurrentCapacity   int     `json:"currentCapacity"`
	FutureCapacity    int     `json:"futureCapacity"`
	ScalabilityScore  float64 `json:"scalabilityScore"`
	AdaptabilityScore float64 `json:"adaptabilityScore"`
}

type SimulationResults struct {
	Timestamp       time.Time         `json:"timestamp"`
	Metrics         SimulationMetrics `json:"metrics"`
	Recommendations []string          `json:"recommendations"`
	ProcessAnalysis ProcessAnalysis   `json:"processAnalysis"`
	FutureReadiness FutureReadiness   `json:"futureReadiness"`
}

// SimulationStatus is the last report plus the busy flags.
type SimulationStatus struct {
	IsSimulating bool               `json:"isSimulating"`
	IsLoading    bool               `json:"isLoading"`
	Results      *SimulationResults `json:"results"`
}

package storage

import (
	"encoding/json"
	"errors"
)

// SnapshotVersion is bumped whenever the persisted state shape changes.
// Older snapshots are discarded on load, there is no field-level migration.
const SnapshotVersion = 3

var ErrSnapshotNotFound = errors.New("snapshot not found")

type ProcessFlow struct {
	Steps       []string `json:"steps"`
	TimePerUnit float64  `json:"timePerUnit"`
	Bottlenecks []string `json:"bottlenecks"`
}

type ProcessFlows struct {
	Inbound  ProcessFlow `json:"inbound"`
	Outbound ProcessFlow `json:"outbound"`
}

type UIState struct {
	SelectedZoneID string `json:"selectedZoneId,omitempty"`
	IsDragging     bool   `json:"isDragging"`
	IsResizing     bool   `json:"isResizing"`
}

// UIPatch carries editor state changes. Nil fields are left untouched, an
// empty SelectedZoneID clears the selection.
type UIPatch struct {
	SelectedZoneID *string `json:"selectedZoneId"`
	IsDragging     *bool   `json:"isDragging"`
	IsResizing     *bool   `json:"isResizing"`
}

// AreaStats relates the zone footprint to the warehouse footprint.
type AreaStats struct {
	TotalZoneArea   int     `json:"totalZoneArea"`
	AvailableSpace  int     `json:"availableSpace"`
	ZoneUtilization float64 `json:"zoneUtilization"`
}

// Bundle is one blueprint: everything derived from a single demand summary.
type Bundle struct {
	Warehouse      Warehouse      `json:"warehouse"`
	Zones          []Zone         `json:"zones"`
	Workforce      Workforce      `json:"workforce"`
	Infrastructure Infrastructure `json:"infrastructure"`
}

type BlueprintState struct {
	UploadedData   *UploadedData `json:"uploadedData"`
	CityDemandData []CityDemand  `json:"cityDemandData"`
	DemandSummary

	Warehouse      Warehouse      `json:"warehouse"`
	Zones          []Zone         `json:"zones"`
	Workforce      Workforce      `json:"workforce"`
	ProcessFlows   ProcessFlows   `json:"processFlows"`
	Infrastructure Infrastructure `json:"infrastructure"`

	SimulationResults *SimulationResults `json:"simulationResults"`
	IsSimulating      bool               `json:"isSimulating"`
	IsLoading         bool               `json:"isLoading"`

	// LastBackendSimulation caches the raw payload of the last upload/simulate call.
	LastBackendSimulation json.RawMessage `json:"lastBackendSimulation,omitempty"`

	UI UIState `json:"ui"`
}

func (s BlueprintState) Bundle() Bundle {
	return Bundle{
		Warehouse:      s.Warehouse,
		Zones:          s.Zones,
		Workforce:      s.Workforce,
		Infrastructure: s.Infrastructure,
	}
}

type Snapshot struct {
	Version int            `json:"version"`
	State   BlueprintState `json:"state"`
}

func DefaultWarehouse() Warehouse {
	return Warehouse{
		Width:                 1000,
		Height:                800,
		Type:                  "fulfillment",
		FutureScaleMultiplier: 3,
	}
}

func DefaultWorkforce() Workforce {
	return Workforce{
		Shifts: Shifts{
			Morning: Shift{Hours: "6AM-2PM"},
			Evening: Shift{Hours: "2PM-10PM"},
			Night:   Shift{Hours: "10PM-6AM"},
		},
	}
}

func DefaultProcessFlows() ProcessFlows {
	return ProcessFlows{
		Inbound: ProcessFlow{
			Steps:       []string{"Truck Arrival", "Unloading", "Quality Check", "Put-away"},
			Bottlenecks: []string{},
		},
		Outbound: ProcessFlow{
			Steps:       []string{"Order Receipt", "Picking", "Packing", "Shipping"},
			Bottlenecks: []string{},
		},
	}
}

func EmptyDemandSummary() DemandSummary {
	return DemandSummary{DemandTier: TierMedium}
}

func DefaultInfrastructure() Infrastructure {
	return Infrastructure{
		Equipment:      []Equipment{},
		Technology:     []Technology{},
		RackingSystems: []string{},
		ShiftCapacity:  map[string]string{},
	}
}

func DefaultState() BlueprintState {
	return BlueprintState{
		CityDemandData: []CityDemand{},
		DemandSummary:  EmptyDemandSummary(),
		Warehouse:      DefaultWarehouse(),
		Zones:          []Zone{},
		Workforce:      DefaultWorkforce(),
		ProcessFlows:   DefaultProcessFlows(),
		Infrastructure: DefaultInfrastructure(),
	}
}

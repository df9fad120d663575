package storage

type Shift struct {
	Staff int    `json:"staff"`
	Hours string `json:"hours"`
}

type Shifts struct {
	Morning Shift `json:"morning"`
	Evening Shift `json:"evening"`
	Night   Shift `json:"night"`
}

type Workforce struct {
	Pickers              int    `json:"pickers"`
	Packers              int    `json:"packers"`
	QualityControl       int    `json:"qualityControl"`
	Supervisors          int    `json:"supervisors"`
	ForkliftOperators    int    `json:"forkliftOperators"`
	ShiftManagers        int    `json:"shiftManagers"`
	Total                int    `json:"total"`
	HourlyCost           int    `json:"hourlyCost"`
	PeakShiftStaff       int    `json:"peakShiftStaff"`
	AverageShiftStaff    int    `json:"averageShiftStaff"`
	CalculatedFromDemand bool   `json:"calculatedFromDemand"`
	Shifts               Shifts `json:"shifts"`
}

// WorkforcePatch overrides individual role counts.
type WorkforcePatch struct {
	Pickers           *int `json:"pickers"`
	Packers           *int `json:"packers"`
	QualityControl    *int `json:"qualityControl"`
	Supervisors       *int `json:"supervisors"`
	ForkliftOperators *int `json:"forkliftOperators"`
	ShiftManagers     *int `json:"shiftManagers"`
}

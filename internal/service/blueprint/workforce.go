package blueprint

import (
	"math"

	"rdc-blueprint/internal/storage"
)

type roleShare struct {
	set   func(w *storage.Workforce, n int)
	share float64
}

// Role fractions of the average staff. Each role is rounded up on its own,
// so the total may exceed the average staff by a few heads. That is expected.
var roleShares = []roleShare{
	{func(w *storage.Workforce, n int) { w.Pickers = n }, 0.35},
	{func(w *storage.Workforce, n int) { w.Packers = n }, 0.25},
	{func(w *storage.Workforce, n int) { w.QualityControl = n }, 0.15},
	{func(w *storage.Workforce, n int) { w.Supervisors = n }, 0.10},
	{func(w *storage.Workforce, n int) { w.ForkliftOperators = n }, 0.10},
	{func(w *storage.Workforce, n int) { w.ShiftManagers = n }, 0.05},
}

const (
	morningShare = 0.4
	eveningShare = 0.4
	nightShare   = 0.2
)

// SizeWorkforce derives role counts and the shift split from demand.
func SizeWorkforce(totalDemand, peakDemand int) storage.Workforce {
	averageStaff := ceil(float64(totalDemand) * BaseStaffRatio)
	peakStaff := ceil(float64(peakDemand) * BaseStaffRatio * PeakMultiplier)

	w := storage.DefaultWorkforce()
	for _, r := range roleShares {
		r.set(&w, ceil(float64(averageStaff)*r.share))
	}
	Recalculate(&w)

	w.PeakShiftStaff = peakStaff
	w.AverageShiftStaff = averageStaff
	w.CalculatedFromDemand = true
	w.Shifts.Morning.Staff = ceil(float64(w.Total) * morningShare)
	w.Shifts.Evening.Staff = ceil(float64(w.Total) * eveningShare)
	w.Shifts.Night.Staff = ceil(float64(w.Total) * nightShare)

	return w
}

// Recalculate restores total and hourly cost from the six role counts.
// Shifts are left alone.
func Recalculate(w *storage.Workforce) {
	w.Total = w.Pickers + w.Packers + w.QualityControl + w.Supervisors + w.ForkliftOperators + w.ShiftManagers
	w.HourlyCost = w.Total * HourlyRate
}

// ApplyWorkforcePatch overrides role counts and recomputes the totals.
func ApplyWorkforcePatch(w storage.Workforce, p storage.WorkforcePatch) storage.Workforce {
	if p.Pickers != nil {
		w.Pickers = *p.Pickers
	}
	if p.Packers != nil {
		w.Packers = *p.Packers
	}
	if p.QualityControl != nil {
		w.QualityControl = *p.QualityControl
	}
	if p.Supervisors != nil {
		w.Supervisors = *p.Supervisors
	}
	if p.ForkliftOperators != nil {
		w.ForkliftOperators = *p.ForkliftOperators
	}
	if p.ShiftManagers != nil {
		w.ShiftManagers = *p.ShiftManagers
	}
	Recalculate(&w)
	return w
}

// ValidateWorkforcePatch rejects negative head counts.
func ValidateWorkforcePatch(p storage.WorkforcePatch) storage.FieldErrors {
	errs := storage.FieldErrors{}
	fields := map[string]*int{
		"pickers":           p.Pickers,
		"packers":           p.Packers,
		"qualityControl":    p.QualityControl,
		"supervisors":       p.Supervisors,
		"forkliftOperators": p.ForkliftOperators,
		"shiftManagers":     p.ShiftManagers,
	}
	for name, v := range fields {
		if v != nil && *v < 0 {
			errs[name] = "must not be negative"
		}
	}
	return errs
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

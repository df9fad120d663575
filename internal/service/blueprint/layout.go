package blueprint

import (
	"fmt"
	"strings"

	"rdc-blueprint/internal/storage"
)

// Canvas is the editing surface that drag and resize are clamped to.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ValidateZone checks a manual zone against the warehouse it is being added to.
// It only runs at add time; later edits are clamped, not validated.
func ValidateZone(in storage.ZoneInput, wh storage.Warehouse) storage.FieldErrors {
	errs := storage.FieldErrors{}

	if _, ok := LookupZoneType(in.Type); !ok {
		errs["type"] = fmt.Sprintf("Unknown zone type %q", in.Type)
	}

	if strings.TrimSpace(in.Label) == "" {
		errs["label"] = "Zone label is required"
	}

	if in.Width < MinZoneSize || in.Width > wh.Width {
		errs["width"] = fmt.Sprintf("Width must be between %d and %d ft", MinZoneSize, wh.Width)
	}

	if in.Height < MinZoneSize || in.Height > wh.Height {
		errs["height"] = fmt.Sprintf("Height must be between %d and %d ft", MinZoneSize, wh.Height)
	}

	if in.X < 0 || in.X+in.Width > wh.Width {
		errs["x"] = "X position must allow zone to fit within warehouse"
	}

	if in.Y < 0 || in.Y+in.Height > wh.Height {
		errs["y"] = "Y position must allow zone to fit within warehouse"
	}

	return errs
}

// ValidatePatch rejects edits that would leave a zone without a label or with an unknown type.
func ValidatePatch(p storage.ZonePatch) storage.FieldErrors {
	errs := storage.FieldErrors{}

	if p.Label != nil && strings.TrimSpace(*p.Label) == "" {
		errs["label"] = "Zone label is required"
	}

	if p.Type != nil {
		if _, ok := LookupZoneType(*p.Type); !ok {
			errs["type"] = fmt.Sprintf("Unknown zone type %q", *p.Type)
		}
	}

	return errs
}

// ApplyPatch applies p to z and clamps the touched geometry into the canvas.
// A move keeps the size; a resize keeps the origin. Overlap is not checked.
func ApplyPatch(z storage.Zone, p storage.ZonePatch, c Canvas) storage.Zone {
	if p.Label != nil {
		z.Label = *p.Label
	}
	if p.Description != nil {
		z.Description = *p.Description
	}
	if p.Type != nil {
		z.Type = *p.Type
	}

	if p.X != nil {
		z.X = clamp(*p.X, 0, c.Width-z.Width)
	}
	if p.Y != nil {
		z.Y = clamp(*p.Y, 0, c.Height-z.Height)
	}

	if p.Width != nil {
		z.Width = clamp(max(*p.Width, MinResizeSize), 0, c.Width-z.X)
	}
	if p.Height != nil {
		z.Height = clamp(max(*p.Height, MinResizeSize), 0, c.Height-z.Y)
	}

	return z
}

// clamp bounds v to [lo, hi]; when hi < lo the lower bound wins.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

type IssueKind string

const (
	IssueOutOfBounds IssueKind = "out_of_bounds"
	IssueOverlap     IssueKind = "overlap"
)

type LayoutIssue struct {
	Kind    IssueKind `json:"kind"`
	ZoneIDs []string  `json:"zoneIds"`
	Message string    `json:"message"`
}

type LayoutReport struct {
	Valid  bool          `json:"valid"`
	Issues []LayoutIssue `json:"issues"`
}

// CheckLayout reports zones outside the warehouse and overlapping pairs.
// Nothing enforces it; callers decide what to do with the report.
func CheckLayout(wh storage.Warehouse, zones []storage.Zone) LayoutReport {
	report := LayoutReport{Valid: true, Issues: []LayoutIssue{}}

	for _, z := range zones {
		if z.X < 0 || z.Y < 0 || z.X+z.Width > wh.Width || z.Y+z.Height > wh.Height {
			report.Issues = append(report.Issues, LayoutIssue{
				Kind:    IssueOutOfBounds,
				ZoneIDs: []string{z.ID},
				Message: fmt.Sprintf("zone %s (%d,%d %dx%d) exceeds warehouse %dx%d", z.ID, z.X, z.Y, z.Width, z.Height, wh.Width, wh.Height),
			})
		}
	}

	for i := 0; i < len(zones); i++ {
		for j := i + 1; j < len(zones); j++ {
			if overlaps(zones[i], zones[j]) {
				report.Issues = append(report.Issues, LayoutIssue{
					Kind:    IssueOverlap,
					ZoneIDs: []string{zones[i].ID, zones[j].ID},
					Message: fmt.Sprintf("zones %s and %s overlap", zones[i].ID, zones[j].ID),
				})
			}
		}
	}

	report.Valid = len(report.Issues) == 0
	return report
}

func overlaps(a, b storage.Zone) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// Stats measures the zones against the warehouse footprint. Available space
// goes negative when zones overlap or spill out.
func Stats(w storage.Warehouse, zones []storage.Zone) storage.AreaStats {
	total := 0
	for _, z := range zones {
		total += z.Area()
	}

	footprint := w.Width * w.Height
	stats := storage.AreaStats{
		TotalZoneArea:  total,
		AvailableSpace: footprint - total,
	}
	if footprint > 0 {
		stats.ZoneUtilization = float64(total) / float64(footprint) * 100
	}
	return stats
}

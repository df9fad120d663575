package blueprint

import (
	"fmt"

	"rdc-blueprint/internal/storage"
)

// Generate derives a full bundle from a demand summary. ok is false when
// there is no demand to plan for.
func Generate(summary storage.DemandSummary, rnd Rand) (bundle storage.Bundle, ok bool) {
	if summary.TotalDemand <= 0 {
		return storage.Bundle{}, false
	}

	dims := PlanDimensions(summary.TotalDemand, summary.TopCity)

	warehouse := storage.Warehouse{
		Name:                  fmt.Sprintf("%s Fulfillment Center", summary.TopCity),
		Width:                 dims.Width,
		Height:                dims.Height,
		TotalArea:             dims.TotalArea,
		Location:              dims.Location,
		Type:                  "fulfillment",
		CalculatedFromData:    true,
		DemandCapacity:        summary.TotalDemand,
		FutureScaleMultiplier: FutureScaleMultiplier,
		OptimalLayout:         "AI-Optimized",
	}

	return storage.Bundle{
		Warehouse:      warehouse,
		Zones:          PackZones(dims.Width, dims.Height, summary.TotalDemand, rnd),
		Workforce:      SizeWorkforce(summary.TotalDemand, summary.PeakDemand),
		Infrastructure: RecommendInfrastructure(summary.DemandTier, summary.TotalDemand),
	}, true
}

// ApplyWarehousePatch overrides name and size. Total area is not recomputed.
func ApplyWarehousePatch(w storage.Warehouse, p storage.WarehousePatch) storage.Warehouse {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Width != nil {
		w.Width = *p.Width
	}
	if p.Height != nil {
		w.Height = *p.Height
	}
	return w
}

func ValidateWarehousePatch(p storage.WarehousePatch) storage.FieldErrors {
	errs := storage.FieldErrors{}
	if p.Width != nil && *p.Width <= 0 {
		errs["width"] = "Width must be positive"
	}
	if p.Height != nil && *p.Height <= 0 {
		errs["height"] = "Height must be positive"
	}
	return errs
}

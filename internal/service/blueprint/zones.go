package blueprint

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"rdc-blueprint/internal/storage"
)

// PackZones carves one zone per catalog entry out of a width x height floor.
// Zones are placed left to right and wrap to a new row of fixed height when
// the next one would cross the right margin. Vertical fit is not checked.
func PackZones(width, height, totalDemand int, rnd Rand) []storage.Zone {
	zones := make([]storage.Zone, 0, len(ZoneCatalog))
	totalArea := float64(width * height)

	cursorX, cursorY := ZoneMargin, ZoneMargin

	for i, cfg := range ZoneCatalog {
		zoneArea := totalArea * cfg.DemandMultiplier
		zoneWidth := int(math.Ceil(math.Sqrt(zoneArea * ZoneAspectRatio)))
		zoneHeight := int(math.Ceil(zoneArea / float64(zoneWidth)))

		if cursorX+zoneWidth > width-ZoneMargin {
			cursorX = ZoneMargin
			cursorY += ZoneRowHeight
		}

		zones = append(zones, storage.Zone{
			ID:            fmt.Sprintf("zone-%d", i+1),
			Type:          cfg.Type,
			X:             cursorX,
			Y:             cursorY,
			Width:         zoneWidth,
			Height:        zoneHeight,
			Label:         cfg.Label + " (AI Optimized)",
			Description:   fmt.Sprintf("%s - Sized for %s unit demand", cfg.Description, humanize.Comma(int64(totalDemand))),
			Capacity:      int(math.Floor(zoneArea / AreaPerCapacityUnit)),
			Efficiency:    MinZoneEfficiency + rnd.Float64()*ZoneEfficiencySpread,
			StaffRequired: int(math.Ceil(zoneArea * cfg.StaffPerUnit / StaffAreaDivisor)),
		})

		cursorX += zoneWidth + ZoneGutter
	}

	return zones
}

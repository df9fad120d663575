package blueprint

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"rdc-blueprint/internal/storage"
)

// RecommendInfrastructure looks up equipment and technology for a demand tier.
// Unknown tiers are treated as medium.
func RecommendInfrastructure(tier storage.DemandTier, totalDemand int) storage.Infrastructure {
	if _, ok := forkliftCatalog[tier]; !ok {
		tier = storage.TierMedium
	}

	forklifts := forkliftCatalog[tier]
	conveyors := conveyorCatalog[tier]
	racking := rackingCatalog[tier]

	equipment := []storage.Equipment{
		newEquipment("Material Handling", forklifts.Type, forklifts.Count, forklifts.Cost),
		newEquipment("Automation", conveyors.Type, conveyors.Length, conveyors.Cost),
		newEquipment("Storage Systems", racking.Type, racking.Levels*RackBaysPerLevel, racking.Cost),
	}

	technology := append([]storage.Technology(nil), technologyCatalog[tier]...)

	investment := 0
	for _, e := range equipment {
		investment += e.TotalCost
	}
	for _, t := range technology {
		investment += t.Cost
	}

	return storage.Infrastructure{
		Equipment:  equipment,
		Technology: technology,
		RackingSystems: []string{
			fmt.Sprintf("%d-Level %s", racking.Levels, racking.Type),
			"Cross-Docking Bays",
			"Mezzanine Storage",
		},
		// Shares of demand, not of workforce shifts; the two are not reconciled.
		ShiftCapacity: map[string]string{
			"Morning (6AM-2PM)":  unitsLabel(float64(totalDemand) * morningShare),
			"Evening (2PM-10PM)": unitsLabel(float64(totalDemand) * eveningShare),
			"Night (10PM-6AM)":   unitsLabel(float64(totalDemand) * nightShare),
		},
		InvestmentRequired: investment,
	}
}

func newEquipment(category, item string, quantity, unitCost int) storage.Equipment {
	return storage.Equipment{
		Category:  category,
		Item:      item,
		Quantity:  quantity,
		UnitCost:  unitCost,
		TotalCost: quantity * unitCost,
	}
}

func unitsLabel(v float64) string {
	return humanize.Comma(int64(ceil(v))) + " units"
}

package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdc-blueprint/internal/storage"
)

func TestRecommendInfrastructure_High(t *testing.T) {
	infra := RecommendInfrastructure(storage.TierHigh, 200000)

	require.Len(t, infra.Equipment, 3)
	assert.Equal(t, storage.Equipment{Category: "Material Handling", Item: "Reach Truck", Quantity: 8, UnitCost: 65000, TotalCost: 520000}, infra.Equipment[0])
	assert.Equal(t, 300000, infra.Equipment[1].TotalCost)
	assert.Equal(t, 400, infra.Equipment[2].Quantity)
	assert.Equal(t, 160000, infra.Equipment[2].TotalCost)

	assert.Len(t, infra.Technology, 4)
	assert.Equal(t, 1630000, infra.InvestmentRequired)
	assert.Equal(t, "8-Level AS/RS", infra.RackingSystems[0])
	assert.Equal(t, "80,000 units", infra.ShiftCapacity["Morning (6AM-2PM)"])
	assert.Equal(t, "40,000 units", infra.ShiftCapacity["Night (10PM-6AM)"])
}

func TestRecommendInfrastructure_TierSizes(t *testing.T) {
	medium := RecommendInfrastructure(storage.TierMedium, 100000)
	low := RecommendInfrastructure(storage.TierLow, 1000)

	assert.Len(t, medium.Technology, 3)
	assert.Equal(t, 507500, medium.InvestmentRequired)
	assert.Len(t, low.Technology, 2)
	assert.Equal(t, 188000, low.InvestmentRequired)
}

func TestRecommendInfrastructure_InvestmentIsSumOfParts(t *testing.T) {
	for _, tier := range []storage.DemandTier{storage.TierLow, storage.TierMedium, storage.TierHigh} {
		infra := RecommendInfrastructure(tier, 75000)

		sum := 0
		for _, e := range infra.Equipment {
			assert.Equal(t, e.Quantity*e.UnitCost, e.TotalCost)
			sum += e.TotalCost
		}
		for _, tech := range infra.Technology {
			sum += tech.Cost
		}
		assert.Equal(t, sum, infra.InvestmentRequired, "tier %s", tier)
	}
}

func TestRecommendInfrastructure_UnknownTierFallsBackToMedium(t *testing.T) {
	assert.Equal(t,
		RecommendInfrastructure(storage.TierMedium, 1),
		RecommendInfrastructure("", 1))
}

func TestRecommendInfrastructure_CatalogNotShared(t *testing.T) {
	infra := RecommendInfrastructure(storage.TierLow, 1)
	infra.Technology[0].Cost = 0

	again := RecommendInfrastructure(storage.TierLow, 1)
	assert.Equal(t, 35000, again.Technology[0].Cost)
}

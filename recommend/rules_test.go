package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitasisodia/Ni3S/models"
)

func healthyDistrict() models.DistrictAnalytics {
	return models.DistrictAnalytics{
		State:                 "Odisha",
		District:              "Cuttack",
		LatestPenetrationRate: 0.9,
		YouthInclusionRate:    0.8,
		AdultInclusionRate:    0.85,
		YouthAdultGap:         0.05,
		GrowthSlope:           25,
		GrowthVolatility:      0.1,
		StagnationPeriods:     0,
	}
}

func TestForDistrictHealthyTriggersNothing(t *testing.T) {
	set := ForDistrict(healthyDistrict(), models.DistrictRisk{})
	assert.Empty(t, set.Recommendations)
	assert.Equal(t, 0, set.TotalRecommendations)
	assert.Equal(t, 0, set.PriorityBreakdown["critical"])
}

func TestForDistrictCriticalConditions(t *testing.T) {
	a := healthyDistrict()
	a.LatestPenetrationRate = 0.3
	a.GrowthSlope = -2

	set := ForDistrict(a, models.DistrictRisk{})
	require.Len(t, set.Recommendations, 2)
	assert.Equal(t, 2, set.PriorityBreakdown["critical"])
	assert.Equal(t, "Intensive Enrollment Push", set.Recommendations[0].Intervention)
	assert.Equal(t, "Emergency Enrollment Recovery", set.Recommendations[1].Intervention)
}

func TestForDistrictPriorityOrdering(t *testing.T) {
	a := healthyDistrict()
	a.AdultInclusionRate = 0.5 // medium
	a.YouthInclusionRate = 0.4 // high
	a.GrowthSlope = -1         // critical

	set := ForDistrict(a, models.DistrictRisk{})
	require.GreaterOrEqual(t, len(set.Recommendations), 3)
	assert.Equal(t, "critical", set.Recommendations[0].Priority)

	// Priorities never regress down the list.
	order := map[string]int{"critical": 0, "high": 1, "medium": 2, "low": 3}
	for i := 1; i < len(set.Recommendations); i++ {
		assert.LessOrEqual(t,
			order[set.Recommendations[i-1].Priority],
			order[set.Recommendations[i].Priority])
	}
}

func TestForDistrictThresholdEdges(t *testing.T) {
	a := healthyDistrict()

	// Conditions are strict inequalities: sitting exactly on a threshold
	// does not trigger.
	a.LatestPenetrationRate = 0.4
	a.StagnationPeriods = 3
	a.GrowthVolatility = 0.3
	a.YouthAdultGap = 0.25
	set := ForDistrict(a, models.DistrictRisk{})
	assert.Empty(t, set.Recommendations)

	a.StagnationPeriods = 4
	set = ForDistrict(a, models.DistrictRisk{})
	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, "Community Outreach Campaign", set.Recommendations[0].Intervention)
}

package risk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/models"
)

func testRiskEngine() *Engine {
	features := []models.DistrictFeatures{
		{State: "Bihar", District: "Gaya", LatestPenetrationRate: 0.3, YouthInclusionRate: 0.2, GrowthSlope: -5},
		{State: "Bihar", District: "Patna", LatestPenetrationRate: 0.9, YouthInclusionRate: 0.8, GrowthSlope: 40},
		{State: "Odisha", District: "Cuttack", LatestPenetrationRate: 0.6, YouthInclusionRate: 0.5, GrowthSlope: 10},
	}
	return New(features, ComputeScores(features))
}

func TestDistrictRisk(t *testing.T) {
	e := testRiskEngine()

	r, err := e.DistrictRisk("Bihar", "Gaya")
	require.NoError(t, err)
	assert.Equal(t, "Gaya", r.District)
	assert.Greater(t, r.CompositeScore, 0.0)
	assert.NotEmpty(t, r.Category)

	_, err = e.DistrictRisk("Bihar", "Nowhere")
	assert.True(t, errors.Is(err, analytics.ErrNotFound))
}

func TestTopDistrictsOrderingAndLimit(t *testing.T) {
	e := testRiskEngine()

	top := e.TopDistricts(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Gaya", top[0].District, "lowest coverage and declining growth ranks first")
	assert.GreaterOrEqual(t, top[0].RiskScore, top[1].RiskScore)

	// A limit past the collection size returns everything.
	assert.Len(t, e.TopDistricts(50), 3)
	assert.Empty(t, e.TopDistricts(0))
}

func TestHeatmapCoversEveryDistrict(t *testing.T) {
	e := testRiskEngine()
	cells := e.Heatmap()
	require.Len(t, cells, 3)
	seen := make(map[string]bool)
	for _, c := range cells {
		seen[c.State+"/"+c.District] = true
		assert.NotEmpty(t, c.Category)
	}
	assert.Len(t, seen, 3)
}

func TestDistribution(t *testing.T) {
	e := testRiskEngine()
	dist := e.Distribution()

	assert.Equal(t, 3, dist.TotalDistricts)
	total := 0
	for _, n := range dist.OverallDistribution {
		total += n
	}
	assert.Equal(t, 3, total)

	require.Len(t, dist.StateRiskSummary, 2)
	assert.Equal(t, "Bihar", dist.StateRiskSummary[0].State)
	assert.Equal(t, 2, dist.StateRiskSummary[0].NumDistricts)
	assert.GreaterOrEqual(t, dist.StateRiskSummary[0].MaxRiskScore,
		dist.StateRiskSummary[0].AvgRiskScore)
	assert.Greater(t, dist.AvgNationalRisk, 0.0)
}

func TestHighRiskStates(t *testing.T) {
	e := testRiskEngine()

	// Threshold zero matches every district; Bihar has more of them.
	states := e.HighRiskStates(0)
	require.Len(t, states, 2)
	assert.Equal(t, "Bihar", states[0])

	assert.Empty(t, e.HighRiskStates(2))
}

func TestStateScores(t *testing.T) {
	e := testRiskEngine()
	assert.Len(t, e.StateScores("Bihar"), 2)
	assert.Len(t, e.StateScores("Odisha"), 1)
	assert.Empty(t, e.StateScores("Atlantis"))
}

package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitasisodia/Ni3S/models"
)

func feature(district string, penetration, youth, slope, volatility float64, stagnation int) models.DistrictFeatures {
	return models.DistrictFeatures{
		State:                 "Odisha",
		District:              district,
		LatestPenetrationRate: penetration,
		YouthInclusionRate:    youth,
		GrowthSlope:           slope,
		GrowthVolatility:      volatility,
		StagnationPeriods:     stagnation,
	}
}

func TestComputeScoresNormalization(t *testing.T) {
	features := []models.DistrictFeatures{
		feature("Best", 0.9, 0.8, 50, 0.0, 0),
		feature("Mid", 0.6, 0.4, 20, 0.1, 2),
		feature("Worst", 0.3, 0.2, -10, 0.2, 4),
	}
	scores := ComputeScores(features)
	require.Len(t, scores, 3)

	best, worst := scores[0], scores[2]

	// The best-covered district anchors zero risk on each max-normalized
	// factor; the worst trends toward one.
	assert.InDelta(t, 0.0, best.PenetrationRisk, 1e-9)
	assert.InDelta(t, 0.0, best.GrowthRisk, 1e-9)
	assert.InDelta(t, 0.0, best.YouthRisk, 1e-9)
	assert.InDelta(t, 0.0, best.VolatilityRisk, 1e-9)
	assert.InDelta(t, 0.0, best.StagnationRisk, 1e-9)

	assert.InDelta(t, 1-0.3/0.9, worst.PenetrationRisk, 1e-9)
	assert.InDelta(t, 1.0, worst.GrowthRisk, 1e-9)
	assert.InDelta(t, 1-0.2/0.8, worst.YouthRisk, 1e-9)
	assert.InDelta(t, 1.0, worst.VolatilityRisk, 1e-9)
	assert.InDelta(t, 1.0, worst.StagnationRisk, 1e-9)

	for _, s := range scores {
		assert.GreaterOrEqual(t, s.CompositeScore, 0.0)
		assert.LessOrEqual(t, s.CompositeScore, 1.0)
		// Composite is the fixed weighting of the five components.
		want := 0.35*s.PenetrationRisk + 0.25*s.GrowthRisk + 0.20*s.YouthRisk +
			0.10*s.VolatilityRisk + 0.10*s.StagnationRisk
		assert.InDelta(t, want, s.CompositeScore, 1e-9)
	}
}

func TestComputeScoresDegenerateRanges(t *testing.T) {
	// Identical slopes carry no ranking signal: everyone scores neutral.
	features := []models.DistrictFeatures{
		feature("A", 0.5, 0.5, 10, 0, 0),
		feature("B", 0.7, 0.6, 10, 0, 0),
	}
	scores := ComputeScores(features)
	require.Len(t, scores, 2)
	assert.Equal(t, 0.5, scores[0].GrowthRisk)
	assert.Equal(t, 0.5, scores[1].GrowthRisk)

	// Absence of volatility and stagnation anywhere means absence of that
	// risk, not a neutral 0.5.
	assert.Equal(t, 0.0, scores[0].VolatilityRisk)
	assert.Equal(t, 0.0, scores[0].StagnationRisk)
}

func TestComputeScoresAllZeroFactors(t *testing.T) {
	features := []models.DistrictFeatures{
		feature("A", 0, 0, 0, 0, 0),
		feature("B", 0, 0, 0, 0, 0),
	}
	scores := ComputeScores(features)
	require.Len(t, scores, 2)
	for _, s := range scores {
		assert.Equal(t, 0.5, s.PenetrationRisk)
		assert.Equal(t, 0.5, s.GrowthRisk)
		assert.Equal(t, 0.5, s.YouthRisk)
		assert.Equal(t, 0.0, s.VolatilityRisk)
		assert.Equal(t, 0.0, s.StagnationRisk)
	}
}

func TestComputeScoresEmpty(t *testing.T) {
	assert.Nil(t, ComputeScores(nil))
}

func TestCategorizeBoundaries(t *testing.T) {
	assert.Equal(t, models.RiskLow, Categorize(0))
	assert.Equal(t, models.RiskLow, Categorize(0.3))
	assert.Equal(t, models.RiskMedium, Categorize(0.31))
	assert.Equal(t, models.RiskMedium, Categorize(0.6))
	assert.Equal(t, models.RiskHigh, Categorize(0.61))
	assert.Equal(t, models.RiskHigh, Categorize(1))
}

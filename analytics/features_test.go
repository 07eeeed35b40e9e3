package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitasisodia/Ni3S/models"
)

func row(district string, d int, pop, enroll, rate float64) models.MasterRow {
	return models.MasterRow{
		State:           "Odisha",
		District:        district,
		Date:            time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC),
		YouthPopulation: pop / 2,
		AdultPopulation: pop / 2,
		TotalPopulation: pop,
		YouthEnrollment: enroll / 2,
		AdultEnrollment: enroll / 2,
		TotalEnrollment: enroll,
		PenetrationRate: rate,
	}
}

func TestComputeFeaturesLatestVsAverage(t *testing.T) {
	master := []models.MasterRow{
		row("Cuttack", 1, 1000, 400, 0.40),
		row("Cuttack", 31, 1000, 700, 0.70),
	}
	features := ComputeFeatures(master)
	require.Len(t, features, 1)
	f := features[0]

	// Point-in-time totals come from the latest observation only; summing
	// history would double-count people across snapshots.
	assert.Equal(t, int64(700), f.TotalEnrollments)
	assert.Equal(t, int64(1000), f.TotalPopulation)
	assert.InDelta(t, 0.55, f.AvgPenetrationRate, 1e-9)
	assert.InDelta(t, 0.70, f.LatestPenetrationRate, 1e-9)
	assert.Equal(t, 30, f.TimeSpanDays)
	assert.Equal(t, 2, f.DataPoints)
}

func TestComputeFeaturesOrderIndependent(t *testing.T) {
	// Rows arrive unsorted; chronology is restored inside the group.
	master := []models.MasterRow{
		row("Cuttack", 31, 1000, 700, 0.70),
		row("Cuttack", 1, 1000, 400, 0.40),
	}
	features := ComputeFeatures(master)
	require.Len(t, features, 1)
	assert.Equal(t, int64(700), features[0].TotalEnrollments)
	assert.InDelta(t, 0.70, features[0].LatestPenetrationRate, 1e-9)
}

func TestComputeFeaturesGrowthSlope(t *testing.T) {
	master := []models.MasterRow{
		row("Puri", 1, 1000, 100, 0.1),
		row("Puri", 2, 1000, 200, 0.2),
		row("Puri", 3, 1000, 300, 0.3),
	}
	features := ComputeFeatures(master)
	require.Len(t, features, 1)
	assert.InDelta(t, 100.0, features[0].GrowthSlope, 1e-9)
}

func TestComputeFeaturesSinglePointDegenerates(t *testing.T) {
	features := ComputeFeatures([]models.MasterRow{row("Puri", 1, 1000, 100, 0.1)})
	require.Len(t, features, 1)
	f := features[0]
	assert.Equal(t, 0.0, f.GrowthSlope)
	assert.Equal(t, 0.0, f.GrowthVolatility)
	assert.Equal(t, 0, f.StagnationPeriods)
	assert.Equal(t, 0, f.TimeSpanDays)
	assert.Equal(t, 1, f.DataPoints)
}

func TestGrowthVolatilitySkipsZeroDenominators(t *testing.T) {
	// The first step starts from zero; its growth rate is undefined and
	// excluded, leaving a single valid step and therefore zero volatility.
	assert.Equal(t, 0.0, growthVolatility([]float64{0, 100, 200}))

	// Two valid steps with different growth rates have spread.
	assert.Greater(t, growthVolatility([]float64{100, 200, 250}), 0.0)

	// Constant growth has no spread.
	assert.InDelta(t, 0.0, growthVolatility([]float64{100, 200, 400}), 1e-9)
}

func TestStagnationCount(t *testing.T) {
	// Both transitions grow under 1%.
	assert.Equal(t, 2, stagnationCount([]float64{1000, 1005, 1008}))

	// A short series counts zero by definition.
	assert.Equal(t, 0, stagnationCount([]float64{1000, 1005}))

	// Healthy growth does not count.
	assert.Equal(t, 0, stagnationCount([]float64{1000, 1100, 1210}))

	// A decline beyond the threshold is movement, not stagnation.
	assert.Equal(t, 0, stagnationCount([]float64{1000, 900, 810}))
}

func TestComputeFeaturesSortedByStateDistrict(t *testing.T) {
	master := []models.MasterRow{
		row("Puri", 1, 1000, 100, 0.1),
		row("Cuttack", 1, 1000, 100, 0.1),
	}
	features := ComputeFeatures(master)
	require.Len(t, features, 2)
	assert.Equal(t, "Cuttack", features[0].District)
	assert.Equal(t, "Puri", features[1].District)
}

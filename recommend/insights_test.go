package recommend

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/risk"
)

func testEngines() (*analytics.Engine, *risk.Engine) {
	date := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	master := []models.MasterRow{
		{
			State: "Odisha", District: "Cuttack", Date: date,
			YouthPopulation: 500, AdultPopulation: 500, TotalPopulation: 1000,
			YouthEnrollment: 400, AdultEnrollment: 450, TotalEnrollment: 850,
			PenetrationRate: 0.85,
		},
		{
			State: "Bihar", District: "Gaya", Date: date,
			YouthPopulation: 500, AdultPopulation: 500, TotalPopulation: 1000,
			YouthEnrollment: 50, AdultEnrollment: 100, TotalEnrollment: 150,
			PenetrationRate: 0.15,
		},
	}
	features := analytics.ComputeFeatures(master)
	scores := risk.ComputeScores(features)
	return analytics.New(master, features), risk.New(features, scores)
}

func TestPolicyInsights(t *testing.T) {
	ae, re := testEngines()
	report := PolicyInsights(ae, re)

	assert.Equal(t, len(report.Insights), report.TotalInsights)
	// National coverage is 50%, so the coverage-gap insight fires.
	require.NotEmpty(t, report.Insights)
	assert.Equal(t, "National Coverage", report.Insights[0].Category)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestStateInsights(t *testing.T) {
	ae, re := testEngines()

	report, err := StateInsights("Bihar", ae, re)
	require.NoError(t, err)
	assert.Equal(t, "Bihar", report.State)
	require.NotEmpty(t, report.Insights)
	// 15% penetration trips the state threshold insight first.
	assert.Equal(t, "State Penetration", report.Insights[0].Category)

	_, err = StateInsights("Atlantis", ae, re)
	assert.True(t, errors.Is(err, analytics.ErrNotFound))
}

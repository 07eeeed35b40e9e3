package pipeline

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMasterSumsFinerSubdivisions(t *testing.T) {
	// Two pincode-level rows of the same district-date must collapse into
	// one master row with conserved totals.
	demo := []DemographicRecord{
		{State: "Odisha", District: "Cuttack", Date: day(31), Youth: 100, Adult: 300},
		{State: "Odisha", District: "Cuttack", Date: day(31), Youth: 50, Adult: 150},
	}
	enroll := []EnrollmentRecord{
		{State: "Odisha", District: "Cuttack", Date: day(31), Child: 10, Youth: 60, Adult: 200},
		{State: "Odisha", District: "Cuttack", Date: day(31), Child: 5, Youth: 40, Adult: 100},
	}

	rows, drops := BuildMaster(demo, enroll)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, drops.Demographic)
	assert.Equal(t, 0, drops.Enrollment)

	row := rows[0]
	assert.Equal(t, 150.0, row.YouthPopulation)
	assert.Equal(t, 450.0, row.AdultPopulation)
	assert.Equal(t, 600.0, row.TotalPopulation)
	assert.Equal(t, 15.0, row.ChildEnrollment)
	assert.Equal(t, 100.0, row.YouthEnrollment)
	assert.Equal(t, 300.0, row.AdultEnrollment)
	assert.Equal(t, 415.0, row.TotalEnrollment)
	assert.InDelta(t, 415.0/600.0, row.PenetrationRate, 1e-9)
	assert.InDelta(t, 100.0/150.0, row.YouthEnrollmentRate, 1e-9)
	assert.InDelta(t, 300.0/450.0, row.AdultEnrollmentRate, 1e-9)
}

func TestBuildMasterDropsUnknownState(t *testing.T) {
	demo := []DemographicRecord{
		{State: "Unknown", District: "Cuttack", Date: day(1), Youth: 10, Adult: 10},
	}
	enroll := []EnrollmentRecord{
		{State: "Unknown", District: "Cuttack", Date: day(1), Youth: 5, Adult: 5},
	}
	rows, drops := BuildMaster(demo, enroll)
	assert.Empty(t, rows)
	assert.Equal(t, 0, drops.Demographic)
	assert.Equal(t, 0, drops.Enrollment)
}

func TestBuildMasterDropsZeroPopulation(t *testing.T) {
	demo := []DemographicRecord{
		{State: "Bihar", District: "Patna", Date: day(1), Youth: 0, Adult: 0},
	}
	enroll := []EnrollmentRecord{
		{State: "Bihar", District: "Patna", Date: day(1), Child: 1, Youth: 2, Adult: 3},
	}
	rows, drops := BuildMaster(demo, enroll)
	assert.Empty(t, rows)
	// The enrollment side survives to the join and is counted as dropped
	// there, since its demographic partner was removed.
	assert.Equal(t, 1, drops.Enrollment)
}

func TestBuildMasterInnerJoinCountsDrops(t *testing.T) {
	demo := []DemographicRecord{
		{State: "Bihar", District: "Patna", Date: day(1), Youth: 100, Adult: 200},
		{State: "Bihar", District: "Gaya", Date: day(1), Youth: 50, Adult: 50},
	}
	enroll := []EnrollmentRecord{
		{State: "Bihar", District: "Patna", Date: day(1), Youth: 40, Adult: 60},
		{State: "Bihar", District: "Nalanda", Date: day(1), Youth: 10, Adult: 10},
	}
	rows, drops := BuildMaster(demo, enroll)
	require.Len(t, rows, 1)
	assert.Equal(t, "Patna", rows[0].District)
	assert.Equal(t, 1, drops.Demographic)
	assert.Equal(t, 1, drops.Enrollment)
}

func TestBuildMasterClampsRates(t *testing.T) {
	// Enrollment counted above the population baseline caps at 100%.
	demo := []DemographicRecord{
		{State: "Goa", District: "North Goa", Date: day(1), Youth: 100, Adult: 100},
	}
	enroll := []EnrollmentRecord{
		{State: "Goa", District: "North Goa", Date: day(1), Child: 50, Youth: 150, Adult: 150},
	}
	rows, _ := BuildMaster(demo, enroll)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].PenetrationRate)
	assert.Equal(t, 1.0, rows[0].YouthEnrollmentRate)
	assert.Equal(t, 1.0, rows[0].AdultEnrollmentRate)
}

func TestBuildMasterOutputSorted(t *testing.T) {
	demo := []DemographicRecord{
		{State: "Odisha", District: "Cuttack", Date: day(2), Youth: 10, Adult: 10},
		{State: "Bihar", District: "Patna", Date: day(1), Youth: 10, Adult: 10},
		{State: "Odisha", District: "Cuttack", Date: day(1), Youth: 10, Adult: 10},
	}
	enroll := []EnrollmentRecord{
		{State: "Odisha", District: "Cuttack", Date: day(2), Youth: 1, Adult: 1},
		{State: "Bihar", District: "Patna", Date: day(1), Youth: 1, Adult: 1},
		{State: "Odisha", District: "Cuttack", Date: day(1), Youth: 1, Adult: 1},
	}
	rows, _ := BuildMaster(demo, enroll)
	require.Len(t, rows, 3)
	sorted := sort.SliceIsSorted(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.State != b.State {
			return a.State < b.State
		}
		if a.District != b.District {
			return a.District < b.District
		}
		return a.Date.Before(b.Date)
	})
	assert.True(t, sorted)
	assert.Equal(t, "Bihar", rows[0].State)
}

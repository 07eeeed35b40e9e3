package models

import "time"

// RegionKey identifies a district within a state after name normalization.
type RegionKey struct {
	State    string
	District string
}

// MasterRow is one fully aggregated observation: all pincode-level source
// rows for a (state, district, date) summed together, with derived rates.
// Rows are immutable once the snapshot is published.
type MasterRow struct {
	State    string    `json:"state"`
	District string    `json:"district"`
	Date     time.Time `json:"date"`

	// Population by age band (demographic sources).
	YouthPopulation float64 `json:"demo_age_5_17"`
	AdultPopulation float64 `json:"demo_age_17_"`
	TotalPopulation float64 `json:"total_population"`

	// Enrollment by age band (enrollment sources).
	ChildEnrollment float64 `json:"age_0_5"`
	YouthEnrollment float64 `json:"age_5_17"`
	AdultEnrollment float64 `json:"age_18_greater"`
	TotalEnrollment float64 `json:"total_enrollments"`

	// Derived rates, each clamped to [0, 1].
	PenetrationRate     float64 `json:"penetration_rate"`
	YouthEnrollmentRate float64 `json:"youth_enrollment_rate"`
	AdultEnrollmentRate float64 `json:"adult_enrollment_rate"`
}

// Key returns the aggregation key of the row.
func (r MasterRow) Key() RegionKey {
	return RegionKey{State: r.State, District: r.District}
}

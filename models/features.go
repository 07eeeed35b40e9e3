package models

// DistrictFeatures is the per-district intelligence record derived from the
// full master time series of one (state, district) group. Point-in-time
// totals come from the chronologically latest observation; only
// AvgPenetrationRate averages across history.
type DistrictFeatures struct {
	State    string `json:"state"`
	District string `json:"district"`

	TotalEnrollments int64 `json:"total_enrollments"`
	TotalPopulation  int64 `json:"total_population"`

	AvgPenetrationRate    float64 `json:"avg_penetration_rate"`
	LatestPenetrationRate float64 `json:"latest_penetration_rate"`

	YouthInclusionRate float64 `json:"youth_inclusion_rate"`
	AdultInclusionRate float64 `json:"adult_inclusion_rate"`
	YouthAdultGap      float64 `json:"youth_adult_gap"`

	GrowthSlope       float64 `json:"growth_slope"`
	GrowthVolatility  float64 `json:"growth_volatility"`
	StagnationPeriods int     `json:"stagnation_periods"`

	TimeSpanDays int `json:"time_span_days"`
	DataPoints   int `json:"data_points"`
}

// Key returns the region key of the record.
func (f DistrictFeatures) Key() RegionKey {
	return RegionKey{State: f.State, District: f.District}
}

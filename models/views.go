package models

// Query façade output shapes. These mirror the JSON the API serves; rate
// fields are rounded to 4 decimals and slopes to 2 at construction time,
// the unrounded values stay on the core records.

// NationalOverview summarizes the latest snapshot date across all districts.
type NationalOverview struct {
	TotalEnrollments       int64   `json:"total_enrollments"`
	TotalPopulation        int64   `json:"total_population"`
	OverallPenetrationRate float64 `json:"overall_penetration_rate"`
	YouthPenetrationRate   float64 `json:"youth_penetration_rate"`
	AdultPenetrationRate   float64 `json:"adult_penetration_rate"`
	NumStates              int     `json:"num_states"`
	NumDistricts           int     `json:"num_districts"`
	CoverageGap            float64 `json:"coverage_gap"`
	LatestDate             string  `json:"latest_date"`
}

// TrendPoint is one step of a national or district time series.
type TrendPoint struct {
	Date            string  `json:"date"`
	Enrollments     int64   `json:"enrollments"`
	Population      int64   `json:"population,omitempty"`
	PenetrationRate float64 `json:"penetration_rate"`
}

// StateOverview summarizes the latest snapshot date within one state.
type StateOverview struct {
	State              string  `json:"state"`
	TotalEnrollments   int64   `json:"total_enrollments"`
	TotalPopulation    int64   `json:"total_population"`
	AvgPenetrationRate float64 `json:"avg_penetration_rate"`
	NumDistricts       int     `json:"num_districts"`
}

// DistrictAnalytics bundles a district's feature record with its series.
type DistrictAnalytics struct {
	State                 string       `json:"state"`
	District              string       `json:"district"`
	TotalEnrollments      int64        `json:"total_enrollments"`
	TotalPopulation       int64        `json:"total_population"`
	AvgPenetrationRate    float64      `json:"avg_penetration_rate"`
	LatestPenetrationRate float64      `json:"latest_penetration_rate"`
	YouthInclusionRate    float64      `json:"youth_inclusion_rate"`
	AdultInclusionRate    float64      `json:"adult_inclusion_rate"`
	YouthAdultGap         float64      `json:"youth_adult_gap"`
	GrowthSlope           float64      `json:"growth_slope"`
	GrowthVolatility      float64      `json:"growth_volatility"`
	StagnationPeriods     int          `json:"stagnation_periods"`
	Trends                []TrendPoint `json:"trends"`
}

// RiskComponents breaks the composite score into its five factors.
type RiskComponents struct {
	PenetrationRisk float64 `json:"penetration_risk"`
	GrowthRisk      float64 `json:"growth_risk"`
	YouthRisk       float64 `json:"youth_risk"`
	VolatilityRisk  float64 `json:"volatility_risk"`
	StagnationRisk  float64 `json:"stagnation_risk"`
}

// DistrictRisk is the per-district risk view served by the API.
type DistrictRisk struct {
	State          string         `json:"state"`
	District       string         `json:"district"`
	CompositeScore float64        `json:"composite_risk_score"`
	Category       string         `json:"risk_category"`
	Components     RiskComponents `json:"risk_components"`
}

// RiskRanking is one entry of the top-N highest-risk districts list.
type RiskRanking struct {
	State              string  `json:"state"`
	District           string  `json:"district"`
	RiskScore          float64 `json:"risk_score"`
	Category           string  `json:"risk_category"`
	PenetrationRate    float64 `json:"penetration_rate"`
	YouthInclusionRate float64 `json:"youth_inclusion_rate"`
}

// HeatmapCell is one district cell of the national risk heatmap.
type HeatmapCell struct {
	State           string  `json:"state"`
	District        string  `json:"district"`
	RiskScore       float64 `json:"risk_score"`
	Category        string  `json:"risk_category"`
	PenetrationRate float64 `json:"penetration_rate"`
	TotalPopulation int64   `json:"total_population"`
}

// StateRiskSummary rolls composite scores up to one state.
type StateRiskSummary struct {
	State        string  `json:"state"`
	AvgRiskScore float64 `json:"avg_risk_score"`
	MaxRiskScore float64 `json:"max_risk_score"`
	NumDistricts int     `json:"num_districts"`
}

// RiskDistribution is the national tier distribution with state rollups.
type RiskDistribution struct {
	OverallDistribution map[string]int     `json:"overall_distribution"`
	StateRiskSummary    []StateRiskSummary `json:"state_risk_summary"`
	TotalDistricts      int                `json:"total_districts"`
	AvgNationalRisk     float64            `json:"avg_national_risk"`
}

// Recommendation is one triggered intervention for a district.
type Recommendation struct {
	Intervention   string `json:"intervention"`
	Priority       string `json:"priority"`
	Description    string `json:"description"`
	ExpectedImpact string `json:"expected_impact"`
}

// RecommendationSet is the full rule output for one district.
type RecommendationSet struct {
	Recommendations      []Recommendation `json:"recommendations"`
	TotalRecommendations int              `json:"total_recommendations"`
	PriorityBreakdown    map[string]int   `json:"priority_breakdown"`
}

// Insight is one observation of the policy or state insight reports.
type Insight struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
}

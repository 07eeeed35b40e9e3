package models

// Risk tier labels. The lowest bin includes zero.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// RiskScore holds the five normalized risk components and the weighted
// composite for one district. Components are normalized against the global
// range over all districts, so a record is only meaningful inside the
// collection it was computed with.
type RiskScore struct {
	State    string `json:"state"`
	District string `json:"district"`

	PenetrationRisk float64 `json:"penetration_risk"`
	GrowthRisk      float64 `json:"growth_risk"`
	YouthRisk       float64 `json:"youth_risk"`
	VolatilityRisk  float64 `json:"volatility_risk"`
	StagnationRisk  float64 `json:"stagnation_risk"`

	CompositeScore float64 `json:"composite_risk_score"`
	Category       string  `json:"risk_category"`
}

// Key returns the region key of the record.
func (s RiskScore) Key() RegionKey {
	return RegionKey{State: s.State, District: s.District}
}

// Package recommend maps district analytics and risk output onto fixed,
// rule-based intervention text. The rules are static policy configuration;
// conditions read the computed views and never reach back into raw data.
package recommend

import (
	"sort"

	"github.com/lakshitasisodia/Ni3S/models"
)

type rule struct {
	name           string
	priority       string
	intervention   string
	description    string
	expectedImpact string
	condition      func(models.DistrictAnalytics, models.DistrictRisk) bool
}

var priorityOrder = map[string]int{"critical": 0, "high": 1, "medium": 2, "low": 3}

var rules = []rule{
	{
		name:         "low_penetration",
		priority:     "critical",
		intervention: "Intensive Enrollment Push",
		description:  "Overall penetration is below 40%. Immediate large-scale intervention required.",
		expectedImpact: "Achieve 60% penetration within 12 months",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.LatestPenetrationRate < 0.4
		},
	},
	{
		name:         "negative_growth",
		priority:     "critical",
		intervention: "Emergency Enrollment Recovery",
		description:  "Enrollment is declining. Immediate investigation and corrective action required.",
		expectedImpact: "Reverse negative growth trend within 3 months",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.GrowthSlope < 0
		},
	},
	{
		name:         "low_youth_enrollment",
		priority:     "high",
		intervention: "School-Based Enrollment Drives",
		description:  "Youth inclusion rate is below 50%. Deploy mobile enrollment units to schools and educational institutions.",
		expectedImpact: "Increase youth enrollment by 15-25% within 6 months",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.YouthInclusionRate < 0.5
		},
	},
	{
		name:         "stagnation_detected",
		priority:     "high",
		intervention: "Community Outreach Campaign",
		description:  "Enrollment growth has stagnated over multiple periods. Launch targeted awareness campaigns.",
		expectedImpact: "Revitalize enrollment growth momentum",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.StagnationPeriods > 3
		},
	},
	{
		name:         "high_volatility",
		priority:     "medium",
		intervention: "Infrastructure Review",
		description:  "High enrollment volatility detected. Review and stabilize enrollment infrastructure.",
		expectedImpact: "Stabilize enrollment patterns and improve predictability",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.GrowthVolatility > 0.3
		},
	},
	{
		name:         "low_adult_enrollment",
		priority:     "medium",
		intervention: "Mobile Enrollment Camps",
		description:  "Adult inclusion rate is low. Deploy mobile camps to workplaces and community centers.",
		expectedImpact: "Increase adult enrollment by 10-20% within 6 months",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.AdultInclusionRate < 0.6
		},
	},
	{
		name:         "youth_adult_gap",
		priority:     "medium",
		intervention: "Targeted Age-Group Campaigns",
		description:  "Significant gap between youth and adult enrollment rates. Design age-specific interventions.",
		expectedImpact: "Reduce enrollment disparity between age groups",
		condition: func(a models.DistrictAnalytics, _ models.DistrictRisk) bool {
			return a.YouthAdultGap > 0.25
		},
	},
}

// ForDistrict evaluates every rule against one district's analytics and
// risk views, returning triggered interventions ordered by priority.
func ForDistrict(a models.DistrictAnalytics, r models.DistrictRisk) models.RecommendationSet {
	breakdown := map[string]int{"critical": 0, "high": 0, "medium": 0, "low": 0}

	var out []models.Recommendation
	for _, rl := range rules {
		if !rl.condition(a, r) {
			continue
		}
		out = append(out, models.Recommendation{
			Intervention:   rl.intervention,
			Priority:       rl.priority,
			Description:    rl.description,
			ExpectedImpact: rl.expectedImpact,
		})
		breakdown[rl.priority]++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityOrder[out[i].Priority] < priorityOrder[out[j].Priority]
	})

	return models.RecommendationSet{
		Recommendations:      out,
		TotalRecommendations: len(out),
		PriorityBreakdown:    breakdown,
	}
}

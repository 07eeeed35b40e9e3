package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/risk"
)

const timestampFormat = "2006-01-02 15:04:05"

// PolicyReport is the national-level insight bundle.
type PolicyReport struct {
	Insights        []models.Insight `json:"insights"`
	TotalInsights   int              `json:"total_insights"`
	CriticalIssues  int              `json:"critical_issues"`
	StatesOfConcern []string         `json:"states_of_concern"`
	GeneratedAt     string           `json:"generated_at"`
}

// StateReport is the per-state insight bundle.
type StateReport struct {
	State         string           `json:"state"`
	Insights      []models.Insight `json:"insights"`
	TotalInsights int              `json:"total_insights"`
	GeneratedAt   string           `json:"generated_at"`
}

// PolicyInsights derives national observations from the overview and the
// risk distribution.
func PolicyInsights(ae *analytics.Engine, re *risk.Engine) PolicyReport {
	overview := ae.NationalOverview()
	dist := re.Distribution()

	var insights []models.Insight

	if overview.CoverageGap > 0.3 {
		unenrolled := int64(float64(overview.TotalPopulation) * overview.CoverageGap)
		insights = append(insights, models.Insight{
			Category: "National Coverage",
			Severity: "high",
			Insight: fmt.Sprintf("National coverage gap is %.1f%%. Approximately %d individuals remain unenrolled.",
				overview.CoverageGap*100, unenrolled),
			Recommendation: "Launch nationwide enrollment acceleration program targeting uncovered populations.",
		})
	}

	youth, adult := overview.YouthPenetrationRate, overview.AdultPenetrationRate
	gap := youth - adult
	if gap < 0 {
		gap = -gap
	}
	if gap > 0.2 {
		if youth < adult {
			insights = append(insights, models.Insight{
				Category: "Youth Inclusion",
				Severity: "high",
				Insight: fmt.Sprintf("Youth penetration (%.1f%%) lags behind adult penetration (%.1f%%) by %.1f percentage points.",
					youth*100, adult*100, gap*100),
				Recommendation: "Prioritize school-based enrollment drives and partnerships with educational institutions.",
			})
		} else {
			insights = append(insights, models.Insight{
				Category: "Adult Inclusion",
				Severity: "medium",
				Insight: fmt.Sprintf("Adult penetration (%.1f%%) lags behind youth penetration (%.1f%%) by %.1f percentage points.",
					adult*100, youth*100, gap*100),
				Recommendation: "Deploy workplace and community-based enrollment campaigns for adults.",
			})
		}
	}

	highRisk := dist.OverallDistribution[models.RiskHigh]
	if dist.TotalDistricts > 0 && float64(highRisk) > float64(dist.TotalDistricts)*0.2 {
		insights = append(insights, models.Insight{
			Category: "Risk Concentration",
			Severity: "critical",
			Insight: fmt.Sprintf("%d districts (%.1f%%) are classified as high-risk, indicating systemic challenges.",
				highRisk, float64(highRisk)/float64(dist.TotalDistricts)*100),
			Recommendation: "Establish dedicated task force for high-risk districts with enhanced resources and monitoring.",
		})
	}

	var elevated []string
	for _, s := range dist.StateRiskSummary {
		if s.AvgRiskScore > 0.6 {
			elevated = append(elevated, s.State)
		}
	}
	if len(elevated) > 0 {
		top := elevated
		if len(top) > 5 {
			top = top[:5]
		}
		insights = append(insights, models.Insight{
			Category: "State-Level Challenges",
			Severity: "high",
			Insight: fmt.Sprintf("%d states show elevated average risk scores. Top concerns: %s.",
				len(elevated), strings.Join(top, ", ")),
			Recommendation: "Provide state-specific technical assistance and additional funding allocation.",
		})
	}

	critical := 0
	for _, ins := range insights {
		if ins.Severity == "critical" {
			critical++
		}
	}
	return PolicyReport{
		Insights:        insights,
		TotalInsights:   len(insights),
		CriticalIssues:  critical,
		StatesOfConcern: re.HighRiskStates(0.6),
		GeneratedAt:     time.Now().Format(timestampFormat),
	}
}

// StateInsights derives observations for one state.
func StateInsights(state string, ae *analytics.Engine, re *risk.Engine) (StateReport, error) {
	overview, err := ae.StateOverview(state)
	if err != nil {
		return StateReport{}, err
	}
	scores := re.StateScores(state)

	var insights []models.Insight

	if overview.AvgPenetrationRate < 0.5 {
		insights = append(insights, models.Insight{
			Category: "State Penetration",
			Severity: "high",
			Insight: fmt.Sprintf("%s has an average penetration rate of %.1f%%, below the recommended threshold.",
				state, overview.AvgPenetrationRate*100),
			Recommendation: "Implement state-wide enrollment acceleration program.",
		})
	}

	var highRisk []models.RiskScore
	for _, s := range scores {
		if s.CompositeScore > 0.6 {
			highRisk = append(highRisk, s)
		}
	}
	if len(highRisk) > 0 {
		sort.Slice(highRisk, func(i, j int) bool {
			return highRisk[i].CompositeScore > highRisk[j].CompositeScore
		})
		top := highRisk
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, 0, len(top))
		for _, s := range top {
			names = append(names, s.District)
		}
		insights = append(insights, models.Insight{
			Category: "High-Risk Districts",
			Severity: "critical",
			Insight: fmt.Sprintf("%d districts in %s are high-risk. Priority districts: %s.",
				len(highRisk), state, strings.Join(names, ", ")),
			Recommendation: "Deploy rapid response teams to high-risk districts for immediate intervention.",
		})
	}

	avg := 0.0
	for _, s := range scores {
		avg += s.CompositeScore
	}
	if len(scores) > 0 {
		avg /= float64(len(scores))
	}
	severity := "medium"
	if avg >= 0.5 {
		severity = "high"
	}
	insights = append(insights, models.Insight{
		Category:       "Overall State Risk",
		Severity:       severity,
		Insight:        fmt.Sprintf("%s has an average risk score of %.2f.", state, avg),
		Recommendation: "Continue monitoring and adjust intervention strategies based on district-level performance.",
	})

	return StateReport{
		State:         state,
		Insights:      insights,
		TotalInsights: len(insights),
		GeneratedAt:   time.Now().Format(timestampFormat),
	}, nil
}


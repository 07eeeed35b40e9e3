// Package risk converts the full collection of district feature records
// into normalized composite risk scores. Every factor is scaled against
// the global observed range, so scores are only defined for the collection
// as a whole: adding or removing a district changes everyone's score, and
// the engine is rebuilt wholesale with each snapshot.
package risk

import (
	"log"

	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/utils"
)

// Fixed policy weights of the composite score.
const (
	weightPenetration = 0.35
	weightGrowth      = 0.25
	weightYouth       = 0.20
	weightVolatility  = 0.10
	weightStagnation  = 0.10
)

// ComputeScores derives one RiskScore per feature record. Degenerate
// global ranges collapse a factor to its neutral value: 0.5 where an
// all-equal factor carries no ranking signal (penetration, growth, youth)
// and 0 where absence of the phenomenon means absence of risk (volatility,
// stagnation). A degenerate range is logged since it signals a data
// anomaly.
func ComputeScores(features []models.DistrictFeatures) []models.RiskScore {
	if len(features) == 0 {
		return nil
	}

	var maxPenetration, maxYouth, maxVolatility float64
	maxStagnation := 0
	maxSlope, minSlope := features[0].GrowthSlope, features[0].GrowthSlope
	for _, f := range features {
		if f.LatestPenetrationRate > maxPenetration {
			maxPenetration = f.LatestPenetrationRate
		}
		if f.YouthInclusionRate > maxYouth {
			maxYouth = f.YouthInclusionRate
		}
		if f.GrowthVolatility > maxVolatility {
			maxVolatility = f.GrowthVolatility
		}
		if f.StagnationPeriods > maxStagnation {
			maxStagnation = f.StagnationPeriods
		}
		if f.GrowthSlope > maxSlope {
			maxSlope = f.GrowthSlope
		}
		if f.GrowthSlope < minSlope {
			minSlope = f.GrowthSlope
		}
	}
	slopeRange := maxSlope - minSlope

	if maxPenetration == 0 {
		log.Printf("risk: degenerate penetration range, scoring neutral")
	}
	if slopeRange == 0 {
		log.Printf("risk: degenerate growth slope range, scoring neutral")
	}
	if maxYouth == 0 {
		log.Printf("risk: degenerate youth inclusion range, scoring neutral")
	}

	scores := make([]models.RiskScore, 0, len(features))
	for _, f := range features {
		s := models.RiskScore{State: f.State, District: f.District}

		if maxPenetration > 0 {
			s.PenetrationRisk = 1 - f.LatestPenetrationRate/maxPenetration
		} else {
			s.PenetrationRisk = 0.5
		}

		if slopeRange > 0 {
			s.GrowthRisk = (maxSlope - f.GrowthSlope) / slopeRange
		} else {
			s.GrowthRisk = 0.5
		}

		if maxYouth > 0 {
			s.YouthRisk = 1 - f.YouthInclusionRate/maxYouth
		} else {
			s.YouthRisk = 0.5
		}

		if maxVolatility > 0 {
			s.VolatilityRisk = f.GrowthVolatility / maxVolatility
		}
		if maxStagnation > 0 {
			s.StagnationRisk = float64(f.StagnationPeriods) / float64(maxStagnation)
		}

		s.CompositeScore = utils.Clamp01(
			weightPenetration*s.PenetrationRisk +
				weightGrowth*s.GrowthRisk +
				weightYouth*s.YouthRisk +
				weightVolatility*s.VolatilityRisk +
				weightStagnation*s.StagnationRisk)
		s.Category = Categorize(s.CompositeScore)

		scores = append(scores, s)
	}
	log.Printf("risk: scores computed for %d districts", len(scores))
	return scores
}

// Categorize maps a composite score to its tier. Bins are (0, 0.3],
// (0.3, 0.6] and (0.6, 1.0], with zero included in the lowest bin.
func Categorize(score float64) string {
	switch {
	case score <= 0.3:
		return models.RiskLow
	case score <= 0.6:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

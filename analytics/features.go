// Package analytics derives per-district intelligence features from the
// master dataset and serves the read-only national, state and district
// views over it. Feature records are recomputed wholesale from an
// immutable master dataset; nothing here mutates after construction.
package analytics

import (
	"log"
	"sort"

	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/utils"
)

// stagnationThreshold is the absolute period-over-period growth below
// which a transition counts as stagnant.
const stagnationThreshold = 0.01

// ComputeFeatures builds one DistrictFeatures record per (state, district)
// group of the master dataset. Each group's rows are ordered
// chronologically first; point-in-time totals are read off the latest
// observation, never summed across history.
func ComputeFeatures(master []models.MasterRow) []models.DistrictFeatures {
	groups := make(map[models.RegionKey][]models.MasterRow)
	for _, row := range master {
		groups[row.Key()] = append(groups[row.Key()], row)
	}

	features := make([]models.DistrictFeatures, 0, len(groups))
	for key, rows := range groups {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
		features = append(features, computeGroup(key, rows))
	}

	sort.Slice(features, func(i, j int) bool {
		if features[i].State != features[j].State {
			return features[i].State < features[j].State
		}
		return features[i].District < features[j].District
	})
	log.Printf("analytics: district features computed for %d districts", len(features))
	return features
}

func computeGroup(key models.RegionKey, rows []models.MasterRow) models.DistrictFeatures {
	latest := rows[len(rows)-1]

	rates := make([]float64, len(rows))
	enrollments := make([]float64, len(rows))
	for i, r := range rows {
		rates[i] = r.PenetrationRate
		enrollments[i] = r.TotalEnrollment
	}

	youthRate := inclusionRate(latest.YouthEnrollment, latest.YouthPopulation)
	adultRate := inclusionRate(latest.AdultEnrollment, latest.AdultPopulation)

	gap := youthRate - adultRate
	if gap < 0 {
		gap = -gap
	}

	return models.DistrictFeatures{
		State:                 key.State,
		District:              key.District,
		TotalEnrollments:      int64(latest.TotalEnrollment),
		TotalPopulation:       int64(latest.TotalPopulation),
		AvgPenetrationRate:    utils.Mean(rates),
		LatestPenetrationRate: latest.PenetrationRate,
		YouthInclusionRate:    youthRate,
		AdultInclusionRate:    adultRate,
		YouthAdultGap:         gap,
		GrowthSlope:           utils.SlopeByIndex(enrollments),
		GrowthVolatility:      growthVolatility(enrollments),
		StagnationPeriods:     stagnationCount(enrollments),
		TimeSpanDays:          int(latest.Date.Sub(rows[0].Date).Hours() / 24),
		DataPoints:            len(rows),
	}
}

func inclusionRate(enrolled, population float64) float64 {
	if population <= 0 {
		return 0
	}
	return utils.Clamp01(enrolled / population)
}

// growthVolatility is the standard deviation of period-over-period
// percentage growth. Steps starting from zero have an undefined growth
// rate and are excluded rather than treated as zero or infinite.
func growthVolatility(series []float64) float64 {
	var growth []float64
	for i := 1; i < len(series); i++ {
		if series[i-1] > 0 {
			growth = append(growth, (series[i]-series[i-1])/series[i-1])
		}
	}
	if len(growth) < 2 {
		return 0
	}
	return utils.StdDev(growth)
}

// stagnationCount counts consecutive-period transitions with negligible
// growth. A series shorter than three observations is too short to
// characterize and counts zero by definition.
func stagnationCount(series []float64) int {
	if len(series) < 3 {
		return 0
	}
	count := 0
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev <= 0 {
			continue
		}
		growth := (series[i] - prev) / prev
		if growth < stagnationThreshold && growth > -stagnationThreshold {
			count++
		}
	}
	return count
}

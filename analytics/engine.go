package analytics

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/utils"
)

// ErrNotFound reports a query for a state or district absent from the
// dataset. Callers branch on it with errors.Is; it is never a crash.
var ErrNotFound = errors.New("not found")

const dateFormat = "2006-01-02"

// Engine answers read-only queries over one immutable master dataset and
// its feature records. Build a new Engine for a new snapshot; an Engine is
// safe for concurrent readers because nothing is written after New.
type Engine struct {
	master     []models.MasterRow
	features   []models.DistrictFeatures
	featureIdx map[models.RegionKey]int
	rowsByKey  map[models.RegionKey][]models.MasterRow
	rowsByState map[string][]models.MasterRow
	states     []string
	districts  map[string][]string
	latestDate time.Time
}

// New indexes the master dataset and features for lookup. Both slices are
// borrowed, not copied; the caller must treat them as immutable.
func New(master []models.MasterRow, features []models.DistrictFeatures) *Engine {
	e := &Engine{
		master:      master,
		features:    features,
		featureIdx:  make(map[models.RegionKey]int, len(features)),
		rowsByKey:   make(map[models.RegionKey][]models.MasterRow),
		rowsByState: make(map[string][]models.MasterRow),
		districts:   make(map[string][]string),
	}
	for i, f := range features {
		e.featureIdx[f.Key()] = i
	}

	seen := make(map[models.RegionKey]bool)
	for _, row := range master {
		key := row.Key()
		e.rowsByKey[key] = append(e.rowsByKey[key], row)
		e.rowsByState[row.State] = append(e.rowsByState[row.State], row)
		if !seen[key] {
			seen[key] = true
			e.districts[row.State] = append(e.districts[row.State], row.District)
		}
		if row.Date.After(e.latestDate) {
			e.latestDate = row.Date
		}
	}
	for state, list := range e.districts {
		sort.Strings(list)
		e.states = append(e.states, state)
	}
	sort.Strings(e.states)
	for _, rows := range e.rowsByKey {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}
	return e
}

// Features returns the feature records backing the engine.
func (e *Engine) Features() []models.DistrictFeatures { return e.features }

// Master returns the master dataset backing the engine.
func (e *Engine) Master() []models.MasterRow { return e.master }

// NationalOverview sums the latest snapshot date across all districts and
// derives rates from the sums. Summing the whole history here would
// double-count every earlier snapshot.
func (e *Engine) NationalOverview() models.NationalOverview {
	var pop, enroll, youthPop, youthEnroll, adultPop, adultEnroll float64
	for _, row := range e.master {
		if !row.Date.Equal(e.latestDate) {
			continue
		}
		pop += row.TotalPopulation
		enroll += row.TotalEnrollment
		youthPop += row.YouthPopulation
		youthEnroll += row.YouthEnrollment
		adultPop += row.AdultPopulation
		adultEnroll += row.AdultEnrollment
	}

	overall := rateOrZero(enroll, pop)
	numDistricts := 0
	for _, list := range e.districts {
		numDistricts += len(list)
	}

	return models.NationalOverview{
		TotalEnrollments:       int64(enroll),
		TotalPopulation:        int64(pop),
		OverallPenetrationRate: utils.Round(overall, 4),
		YouthPenetrationRate:   utils.Round(rateOrZero(youthEnroll, youthPop), 4),
		AdultPenetrationRate:   utils.Round(rateOrZero(adultEnroll, adultPop), 4),
		NumStates:              len(e.states),
		NumDistricts:           numDistricts,
		CoverageGap:            utils.Round(1-overall, 4),
		LatestDate:             e.latestDate.Format(dateFormat),
	}
}

// NationalTrends returns the per-date national series, each point's rate
// derived from the summed counts rather than averaging district rates.
func (e *Engine) NationalTrends() []models.TrendPoint {
	type sums struct{ pop, enroll float64 }
	byDate := make(map[time.Time]*sums)
	for _, row := range e.master {
		s, ok := byDate[row.Date]
		if !ok {
			s = &sums{}
			byDate[row.Date] = s
		}
		s.pop += row.TotalPopulation
		s.enroll += row.TotalEnrollment
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	trends := make([]models.TrendPoint, 0, len(dates))
	for _, d := range dates {
		s := byDate[d]
		trends = append(trends, models.TrendPoint{
			Date:            d.Format(dateFormat),
			Enrollments:     int64(s.enroll),
			Population:      int64(s.pop),
			PenetrationRate: utils.Round(rateOrZero(s.enroll, s.pop), 4),
		})
	}
	return trends
}

// States lists every state present in the dataset, sorted.
func (e *Engine) States() []string { return e.states }

// Districts lists the districts of one state, sorted.
func (e *Engine) Districts(state string) ([]string, error) {
	list, ok := e.districts[state]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", state, ErrNotFound)
	}
	return list, nil
}

// StateOverview sums the state's latest snapshot date.
func (e *Engine) StateOverview(state string) (models.StateOverview, error) {
	rows, ok := e.rowsByState[state]
	if !ok {
		return models.StateOverview{}, fmt.Errorf("state %q: %w", state, ErrNotFound)
	}

	var latest time.Time
	for _, row := range rows {
		if row.Date.After(latest) {
			latest = row.Date
		}
	}
	var pop, enroll float64
	for _, row := range rows {
		if row.Date.Equal(latest) {
			pop += row.TotalPopulation
			enroll += row.TotalEnrollment
		}
	}

	return models.StateOverview{
		State:              state,
		TotalEnrollments:   int64(enroll),
		TotalPopulation:    int64(pop),
		AvgPenetrationRate: utils.Round(rateOrZero(enroll, pop), 4),
		NumDistricts:       len(e.districts[state]),
	}, nil
}

// DistrictAnalytics bundles a district's feature record with its full
// chronological series.
func (e *Engine) DistrictAnalytics(state, district string) (models.DistrictAnalytics, error) {
	key := models.RegionKey{State: state, District: district}
	rows, ok := e.rowsByKey[key]
	if !ok {
		return models.DistrictAnalytics{}, fmt.Errorf("district %q/%q: %w", state, district, ErrNotFound)
	}
	idx, ok := e.featureIdx[key]
	if !ok {
		return models.DistrictAnalytics{}, fmt.Errorf("features for %q/%q: %w", state, district, ErrNotFound)
	}
	f := e.features[idx]

	trends := make([]models.TrendPoint, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, models.TrendPoint{
			Date:            row.Date.Format(dateFormat),
			Enrollments:     int64(row.TotalEnrollment),
			PenetrationRate: utils.Round(row.PenetrationRate, 4),
		})
	}

	return models.DistrictAnalytics{
		State:                 state,
		District:              district,
		TotalEnrollments:      f.TotalEnrollments,
		TotalPopulation:       f.TotalPopulation,
		AvgPenetrationRate:    utils.Round(f.AvgPenetrationRate, 4),
		LatestPenetrationRate: utils.Round(f.LatestPenetrationRate, 4),
		YouthInclusionRate:    utils.Round(f.YouthInclusionRate, 4),
		AdultInclusionRate:    utils.Round(f.AdultInclusionRate, 4),
		YouthAdultGap:         utils.Round(f.YouthAdultGap, 4),
		GrowthSlope:           utils.Round(f.GrowthSlope, 2),
		GrowthVolatility:      utils.Round(f.GrowthVolatility, 4),
		StagnationPeriods:     f.StagnationPeriods,
		Trends:                trends,
	}, nil
}

func rateOrZero(numer, denom float64) float64 {
	if denom <= 0 {
		return 0
	}
	return utils.Clamp01(numer / denom)
}

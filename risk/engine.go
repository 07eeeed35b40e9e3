package risk

import (
	"fmt"
	"sort"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/utils"
)

// Engine serves read-only risk views over one computed score collection.
// Rankings and heatmap cells also carry a few feature fields, so the
// engine keeps the feature records it was scored from.
type Engine struct {
	scores     []models.RiskScore
	features   []models.DistrictFeatures
	scoreIdx   map[models.RegionKey]int
	featureIdx map[models.RegionKey]int
}

// New builds an Engine from feature records and their scores. Both slices
// are borrowed and must not be mutated afterwards.
func New(features []models.DistrictFeatures, scores []models.RiskScore) *Engine {
	e := &Engine{
		scores:     scores,
		features:   features,
		scoreIdx:   make(map[models.RegionKey]int, len(scores)),
		featureIdx: make(map[models.RegionKey]int, len(features)),
	}
	for i, s := range scores {
		e.scoreIdx[s.Key()] = i
	}
	for i, f := range features {
		e.featureIdx[f.Key()] = i
	}
	return e
}

// Scores returns the score collection backing the engine.
func (e *Engine) Scores() []models.RiskScore { return e.scores }

// DistrictRisk returns one district's risk view.
func (e *Engine) DistrictRisk(state, district string) (models.DistrictRisk, error) {
	idx, ok := e.scoreIdx[models.RegionKey{State: state, District: district}]
	if !ok {
		return models.DistrictRisk{}, fmt.Errorf("risk for %q/%q: %w", state, district, analytics.ErrNotFound)
	}
	s := e.scores[idx]
	return models.DistrictRisk{
		State:          s.State,
		District:       s.District,
		CompositeScore: utils.Round(s.CompositeScore, 4),
		Category:       s.Category,
		Components: models.RiskComponents{
			PenetrationRisk: utils.Round(s.PenetrationRisk, 4),
			GrowthRisk:      utils.Round(s.GrowthRisk, 4),
			YouthRisk:       utils.Round(s.YouthRisk, 4),
			VolatilityRisk:  utils.Round(s.VolatilityRisk, 4),
			StagnationRisk:  utils.Round(s.StagnationRisk, 4),
		},
	}, nil
}

// TopDistricts returns the limit highest-composite districts. Ties break
// by state then district name so the ranking is deterministic.
func (e *Engine) TopDistricts(limit int) []models.RiskRanking {
	ordered := make([]models.RiskScore, len(e.scores))
	copy(ordered, e.scores)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].CompositeScore != ordered[j].CompositeScore {
			return ordered[i].CompositeScore > ordered[j].CompositeScore
		}
		if ordered[i].State != ordered[j].State {
			return ordered[i].State < ordered[j].State
		}
		return ordered[i].District < ordered[j].District
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(ordered) {
		limit = len(ordered)
	}

	rankings := make([]models.RiskRanking, 0, limit)
	for _, s := range ordered[:limit] {
		f := e.features[e.featureIdx[s.Key()]]
		rankings = append(rankings, models.RiskRanking{
			State:              s.State,
			District:           s.District,
			RiskScore:          utils.Round(s.CompositeScore, 4),
			Category:           s.Category,
			PenetrationRate:    utils.Round(f.LatestPenetrationRate, 4),
			YouthInclusionRate: utils.Round(f.YouthInclusionRate, 4),
		})
	}
	return rankings
}

// Heatmap returns every district's cell for the national risk map.
func (e *Engine) Heatmap() []models.HeatmapCell {
	cells := make([]models.HeatmapCell, 0, len(e.scores))
	for _, s := range e.scores {
		f := e.features[e.featureIdx[s.Key()]]
		cells = append(cells, models.HeatmapCell{
			State:           s.State,
			District:        s.District,
			RiskScore:       utils.Round(s.CompositeScore, 4),
			Category:        s.Category,
			PenetrationRate: utils.Round(f.LatestPenetrationRate, 4),
			TotalPopulation: f.TotalPopulation,
		})
	}
	return cells
}

// Distribution returns the national tier counts with per-state rollups.
func (e *Engine) Distribution() models.RiskDistribution {
	dist := make(map[string]int)
	type stateAgg struct {
		sum   float64
		max   float64
		count int
	}
	byState := make(map[string]*stateAgg)
	total := 0.0

	for _, s := range e.scores {
		dist[s.Category]++
		total += s.CompositeScore
		agg, ok := byState[s.State]
		if !ok {
			agg = &stateAgg{}
			byState[s.State] = agg
		}
		agg.sum += s.CompositeScore
		agg.count++
		if s.CompositeScore > agg.max {
			agg.max = s.CompositeScore
		}
	}

	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)

	summary := make([]models.StateRiskSummary, 0, len(states))
	for _, state := range states {
		agg := byState[state]
		summary = append(summary, models.StateRiskSummary{
			State:        state,
			AvgRiskScore: utils.Round(agg.sum/float64(agg.count), 4),
			MaxRiskScore: utils.Round(agg.max, 4),
			NumDistricts: agg.count,
		})
	}

	avg := 0.0
	if len(e.scores) > 0 {
		avg = total / float64(len(e.scores))
	}
	return models.RiskDistribution{
		OverallDistribution: dist,
		StateRiskSummary:    summary,
		TotalDistricts:      len(e.scores),
		AvgNationalRisk:     utils.Round(avg, 4),
	}
}

// HighRiskStates lists states ordered by how many of their districts score
// at or above threshold, most affected first.
func (e *Engine) HighRiskStates(threshold float64) []string {
	counts := make(map[string]int)
	for _, s := range e.scores {
		if s.CompositeScore >= threshold {
			counts[s.State]++
		}
	}
	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool {
		if counts[states[i]] != counts[states[j]] {
			return counts[states[i]] > counts[states[j]]
		}
		return states[i] < states[j]
	})
	return states
}

// StateScores returns the scores of one state's districts.
func (e *Engine) StateScores(state string) []models.RiskScore {
	var out []models.RiskScore
	for _, s := range e.scores {
		if s.State == state {
			out = append(out, s)
		}
	}
	return out
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/lakshitasisodia/Ni3S/config"
)

const defaultRankingLimit = 20

// GetRiskRankings returns the highest-risk districts, most severe first.
// The optional limit query parameter caps the list.
func GetRiskRankings(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	cacheKey := config.GetCacheKey("risk_rankings", limit)
	if cached, found := config.RiskCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	rankings := sys.Risk.TopDistricts(limit)
	response := map[string]interface{}{
		"rankings": rankings,
		"count":    len(rankings),
	}
	config.RiskCache.SetDefault(cacheKey, response)
	respondJSON(w, http.StatusOK, response)
}

// GetRiskHeatmap returns one composite score cell per district.
func GetRiskHeatmap(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	cacheKey := config.GetCacheKey("risk_heatmap")
	if cached, found := config.RiskCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	cells := sys.Risk.Heatmap()
	response := map[string]interface{}{
		"heatmap": cells,
		"count":   len(cells),
	}
	config.RiskCache.SetDefault(cacheKey, response)
	respondJSON(w, http.StatusOK, response)
}

// GetRiskDistribution returns tier counts and per-state risk rollups.
func GetRiskDistribution(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	cacheKey := config.GetCacheKey("risk_distribution")
	if cached, found := config.RiskCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	dist := sys.Risk.Distribution()
	config.RiskCache.SetDefault(cacheKey, dist)
	respondJSON(w, http.StatusOK, dist)
}

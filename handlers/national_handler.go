package handlers

import (
	"net/http"

	"github.com/lakshitasisodia/Ni3S/config"
)

// GetNationalOverview returns the latest-date national aggregates.
func GetNationalOverview(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	cacheKey := config.GetCacheKey("national_overview")
	if cached, found := config.AnalyticsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	overview := sys.Analytics.NationalOverview()
	config.AnalyticsCache.SetDefault(cacheKey, overview)
	respondJSON(w, http.StatusOK, overview)
}

// GetNationalTrends returns the national enrollment time series.
func GetNationalTrends(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	cacheKey := config.GetCacheKey("national_trends")
	if cached, found := config.AnalyticsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	trends := sys.Analytics.NationalTrends()
	response := map[string]interface{}{
		"trends":      trends,
		"data_points": len(trends),
	}
	config.AnalyticsCache.SetDefault(cacheKey, response)
	respondJSON(w, http.StatusOK, response)
}

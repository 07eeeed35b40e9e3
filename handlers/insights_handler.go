package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lakshitasisodia/Ni3S/config"
	"github.com/lakshitasisodia/Ni3S/recommend"
)

// GetPolicyInsights returns national-level policy observations.
func GetPolicyInsights(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	cacheKey := config.GetCacheKey("policy_insights")
	if cached, found := config.InsightsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	report := recommend.PolicyInsights(sys.Analytics, sys.Risk)
	config.InsightsCache.SetDefault(cacheKey, report)
	respondJSON(w, http.StatusOK, report)
}

// GetStateInsights returns observations for one state.
func GetStateInsights(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}
	state := mux.Vars(r)["state"]

	cacheKey := config.GetCacheKey("state_insights", state)
	if cached, found := config.InsightsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	report, err := recommend.StateInsights(state, sys.Analytics, sys.Risk)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	config.InsightsCache.SetDefault(cacheKey, report)
	respondJSON(w, http.StatusOK, report)
}

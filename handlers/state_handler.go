package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lakshitasisodia/Ni3S/config"
)

// GetStates lists every state present in the master dataset.
func GetStates(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}

	states := sys.Analytics.States()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"states": states,
		"count":  len(states),
	})
}

// GetStateDistricts lists the districts of one state.
func GetStateDistricts(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}
	state := mux.Vars(r)["state"]

	districts, err := sys.Analytics.Districts(state)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"state":     state,
		"districts": districts,
		"count":     len(districts),
	})
}

// GetStateOverview returns latest-date aggregates for one state.
func GetStateOverview(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}
	state := mux.Vars(r)["state"]

	cacheKey := config.GetCacheKey("state_overview", state)
	if cached, found := config.AnalyticsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	overview, err := sys.Analytics.StateOverview(state)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	config.AnalyticsCache.SetDefault(cacheKey, overview)
	respondJSON(w, http.StatusOK, overview)
}

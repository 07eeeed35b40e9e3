package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lakshitasisodia/Ni3S/config"
	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/recommend"
)

type districtProfile struct {
	Analytics       models.DistrictAnalytics `json:"analytics"`
	Risk            models.DistrictRisk      `json:"risk"`
	Recommendations models.RecommendationSet `json:"recommendations"`
}

// GetDistrictProfile bundles analytics, risk and rule-based
// recommendations for one district in a single response.
func GetDistrictProfile(w http.ResponseWriter, r *http.Request) {
	sys := currentSystem(w)
	if sys == nil {
		return
	}
	vars := mux.Vars(r)
	state, district := vars["state"], vars["district"]

	cacheKey := config.GetCacheKey("district_profile", state, district)
	if cached, found := config.AnalyticsCache.Get(cacheKey); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	analytics, err := sys.Analytics.DistrictAnalytics(state, district)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	risk, err := sys.Risk.DistrictRisk(state, district)
	if err != nil {
		respondLookupError(w, err)
		return
	}

	profile := districtProfile{
		Analytics:       analytics,
		Risk:            risk,
		Recommendations: recommend.ForDistrict(analytics, risk),
	}
	config.AnalyticsCache.SetDefault(cacheKey, profile)
	respondJSON(w, http.StatusOK, profile)
}

package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different response types
	AnalyticsCache *cache.Cache
	RiskCache      *cache.Cache
	InsightsCache  *cache.Cache
)

const (
	// Cache durations; analytics answers only change on refresh, so these
	// mostly bound staleness between a refresh and the explicit flush
	analyticsCacheDuration = 1 * time.Hour
	riskCacheDuration      = 1 * time.Hour
	insightsCacheDuration  = 30 * time.Minute

	// Cleanup intervals
	analyticsCleanupInterval = 2 * time.Hour
	riskCleanupInterval      = 2 * time.Hour
	insightsCleanupInterval  = 1 * time.Hour
)

func InitCache() {
	AnalyticsCache = cache.New(analyticsCacheDuration, analyticsCleanupInterval)
	RiskCache = cache.New(riskCacheDuration, riskCleanupInterval)
	InsightsCache = cache.New(insightsCacheDuration, insightsCleanupInterval)
}

// ClearAllCaches drops every cached response. Called after a successful
// refresh publishes a new snapshot.
func ClearAllCaches() {
	AnalyticsCache.Flush()
	RiskCache.Flush()
	InsightsCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}

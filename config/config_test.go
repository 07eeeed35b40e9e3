package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("NIIS_TEST_STR", "value")
	t.Setenv("NIIS_TEST_INT", "42")
	t.Setenv("NIIS_TEST_BOOL", "true")
	t.Setenv("NIIS_TEST_BAD_INT", "forty-two")

	assert.Equal(t, "value", GetEnvWithDefault("NIIS_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnvWithDefault("NIIS_TEST_ABSENT", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("NIIS_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("NIIS_TEST_BAD_INT", 7))
	assert.True(t, GetEnvAsBool("NIIS_TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("NIIS_TEST_ABSENT", false))
}

func TestGetCacheKey(t *testing.T) {
	assert.Equal(t, "district_profile:Odisha:Cuttack",
		GetCacheKey("district_profile", "Odisha", "Cuttack"))
	assert.Equal(t, "risk_rankings:20", GetCacheKey("risk_rankings", 20))
	assert.Equal(t, "national_overview", GetCacheKey("national_overview"))
}

func TestCacheLifecycle(t *testing.T) {
	InitCache()
	AnalyticsCache.SetDefault("k", "v")
	_, found := AnalyticsCache.Get("k")
	assert.True(t, found)

	ClearAllCaches()
	_, found = AnalyticsCache.Get("k")
	assert.False(t, found)
}

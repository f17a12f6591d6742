package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IS_CLOUD", "")
	t.Setenv("DEV_FEATURES_ENABLED", "")
	t.Setenv("QUOTA_CACHE_TTL", "")

	cfg := Load()

	assert.False(t, cfg.Catalog.IsCloud)
	assert.False(t, cfg.Catalog.IsDevFeaturesEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.QuotaCacheTTL)
}

func TestLoad_CatalogFlags(t *testing.T) {
	t.Setenv("IS_CLOUD", "true")
	t.Setenv("DEV_FEATURES_ENABLED", "1")
	t.Setenv("QUOTA_CACHE_TTL", "30s")
	t.Setenv("SUBSCRIPTION_EVENT_SUBJECT", "events.PLAN_CHANGED")

	cfg := Load()

	env := cfg.Catalog.Environment()
	assert.True(t, env.IsCloud)
	assert.True(t, env.IsDevFeaturesEnabled)
	assert.Equal(t, 30*time.Second, cfg.Catalog.QuotaCacheTTL)
	assert.Equal(t, "events.PLAN_CHANGED", cfg.Catalog.SubscriptionSubject)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("IS_CLOUD", "sometimes")
	t.Setenv("QUOTA_CACHE_TTL", "soon")

	cfg := Load()

	assert.False(t, cfg.Catalog.IsCloud)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.QuotaCacheTTL)
}

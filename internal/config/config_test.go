package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "APIFY_API_TOKEN", "TRAFFIC_FALLBACK_POLICY", "APIFY_POLL_INTERVAL", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "heLi1j7hzjC2gFlIx", cfg.Apify.ActorID)
	assert.Equal(t, 5*time.Second, cfg.Apify.PollInterval)
	assert.Equal(t, 60, cfg.Apify.MaxPolls)
	assert.Equal(t, domain.PolicyStrict, cfg.Apify.FallbackPolicy)
	assert.Equal(t, 2*time.Second, cfg.SerpAPI.CallInterval)
	assert.Equal(t, 30*time.Second, cfg.VendorTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cfg.OpenRouter.Model)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APIFY_POLL_INTERVAL", "250ms")
	t.Setenv("APIFY_MAX_POLLS", "3")
	t.Setenv("TRENDS_CALL_INTERVAL", "7")
	t.Setenv("TRAFFIC_FALLBACK_POLICY", "Placeholder")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Apify.PollInterval)
	assert.Equal(t, 3, cfg.Apify.MaxPolls)
	assert.Equal(t, 7*time.Second, cfg.SerpAPI.CallInterval)
	assert.Equal(t, domain.PolicyPlaceholder, cfg.Apify.FallbackPolicy)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("APIFY_MAX_POLLS", "many")
	t.Setenv("VENDOR_HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Apify.MaxPolls)
	assert.Equal(t, 30*time.Second, cfg.VendorTimeout)
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("TRAFFIC_FALLBACK_POLICY", "yolo")
	cfg, err := Load()
	require.Error(t, err)
	assert.Equal(t, domain.PolicyStrict, cfg.Apify.FallbackPolicy)
}

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/chat/recommend", Method: "POST", Limit: 3, Window: time.Hour, Burst: 3},
			{Path: "/threads/", Method: "POST", Limit: 5, Window: time.Minute, Burst: 5},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/chat/recommend", "POST")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/chat/recommend", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_SeparateClients(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/chat/recommend", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("2.2.2.2", "/chat/recommend", "POST")
	assert.True(t, allowed, "a different client gets its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/chat/recommend", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/chat/recommend", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := testConfig().EndpointConfigs

	exact := MatchEndpoint("/chat/recommend", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 3, exact.Limit)

	prefix := MatchEndpoint("/threads/12/comments", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 5, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/pills", "GET", configs))
}

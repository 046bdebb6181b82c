package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/config"
)

func TestLoadAppliesDefaultsWithNoConfigFile(t *testing.T) {
	settings, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", settings.HTTPAddr)
	assert.Equal(t, "http://localhost:8002", settings.EngineEndpoint)
	assert.Equal(t, 30*time.Second, settings.EngineRequestTimeout)
	assert.Equal(t, 5*time.Minute, settings.RiskZoneCacheTTL)
	assert.Equal(t, 0.25, settings.AvoidanceFactorSafest)
	assert.False(t, settings.DevMockRoutes)
}

func TestLoadHonorsEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROUTING_GATEWAY_ENGINE_ENDPOINT", "http://engine.internal:8002")
	t.Setenv("ROUTING_GATEWAY_DEV_MOCK_ROUTES", "true")

	settings, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://engine.internal:8002", settings.EngineEndpoint)
	assert.True(t, settings.DevMockRoutes)
}

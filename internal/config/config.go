// Package config loads the gateway's runtime Settings from environment
// variables and an optional config file via viper, mirroring the
// original service's env_file-backed Settings singleton.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings is the gateway's full runtime configuration.
type Settings struct {
	// HTTPAddr is the address the HTTP boundary listens on.
	HTTPAddr string

	// EngineEndpoint is the base URL of the Valhalla-compatible routing
	// engine.
	EngineEndpoint string
	// EngineRequestTimeout is loaded from configuration but not passed to
	// the engine client, which bounds each /route or /trace_attributes call
	// with its fixed valhalla.DefaultCallTimeout (30s).
	EngineRequestTimeout time.Duration

	// RiskZoneSourceEndpoint is where the risk-zone Source fetches active
	// zones from.
	RiskZoneSourceEndpoint string
	// RiskZoneCacheTTL bounds how long a risk-zone snapshot is served
	// before a refresh is attempted.
	RiskZoneCacheTTL time.Duration

	// BikeLaneSourceEndpoint is where the bike-lane Source fetches the
	// bikeway network from; defaults to the SF Open Data resource.
	BikeLaneSourceEndpoint string
	// BikeLaneCacheTTL bounds how long a bikeway snapshot is served before
	// a refresh is attempted.
	BikeLaneCacheTTL time.Duration

	// AvoidanceFactorSafest is the radius multiplier SAFEST/SCENIC
	// avoidance uses when validating candidates against LOW-severity
	// zones.
	AvoidanceFactorSafest float64
	// AvoidanceFactorBalanced is the radius multiplier BALANCED avoidance
	// uses when validating candidates against HIGH-severity zones.
	AvoidanceFactorBalanced float64

	// ExclusionCircumferenceBudgetMeters is loaded from configuration but
	// not passed to the risk-zone service, which bounds the combined
	// circumference of exclusion polygons per engine request with its fixed
	// riskzone.MaxBatchCircumferenceMeters (9500m).
	ExclusionCircumferenceBudgetMeters float64

	// DevMockRoutes, when true, serves synthetic straight-line routes
	// instead of reaching the engine. Never enable in production.
	DevMockRoutes bool

	// Development toggles the logger between zap's production and
	// development presets.
	Development bool
}

func defaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("engine_endpoint", "http://localhost:8002")
	v.SetDefault("engine_request_timeout", "30s")
	v.SetDefault("risk_zone_source_endpoint", "http://localhost:8001/internal/risk-zones")
	v.SetDefault("risk_zone_cache_ttl", "5m")
	v.SetDefault("bike_lane_source_endpoint", "https://data.sfgov.org/resource/ygmz-vaxd.geojson?$limit=10000")
	v.SetDefault("bike_lane_cache_ttl", "1h")
	v.SetDefault("avoidance_factor_safest", 0.25)
	v.SetDefault("avoidance_factor_balanced", 0.2)
	v.SetDefault("exclusion_circumference_budget_meters", 9500.0)
	v.SetDefault("dev_mock_routes", false)
	v.SetDefault("development", false)
}

// Load builds Settings from (in increasing priority) defaults, an optional
// config file named routing-gateway.{yaml,json,toml} on the given search
// paths, and ROUTING_GATEWAY_-prefixed environment variables.
func Load(configPaths ...string) (*Settings, error) {
	v := viper.New()
	defaults(v)

	v.SetConfigName("routing-gateway")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("ROUTING_GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return &Settings{
		HTTPAddr:                           v.GetString("http_addr"),
		EngineEndpoint:                     v.GetString("engine_endpoint"),
		EngineRequestTimeout:               v.GetDuration("engine_request_timeout"),
		RiskZoneSourceEndpoint:             v.GetString("risk_zone_source_endpoint"),
		RiskZoneCacheTTL:                   v.GetDuration("risk_zone_cache_ttl"),
		BikeLaneSourceEndpoint:             v.GetString("bike_lane_source_endpoint"),
		BikeLaneCacheTTL:                   v.GetDuration("bike_lane_cache_ttl"),
		AvoidanceFactorSafest:              v.GetFloat64("avoidance_factor_safest"),
		AvoidanceFactorBalanced:            v.GetFloat64("avoidance_factor_balanced"),
		ExclusionCircumferenceBudgetMeters: v.GetFloat64("exclusion_circumference_budget_meters"),
		DevMockRoutes:                      v.GetBool("dev_mock_routes"),
		Development:                        v.GetBool("development"),
	}, nil
}

package routing_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/routing"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

var (
	testOrigin = geo.Coordinate{Lon: -122.4194, Lat: 37.7749}
	testDest   = geo.Coordinate{Lon: -122.4094, Lat: 37.7849}
)

// straightShape carries the origin-destination midpoint as a vertex, since
// validation and scoring only measure route vertices against zone centers.
func straightShape() string {
	mid := geo.Coordinate{Lon: (testOrigin.Lon + testDest.Lon) / 2, Lat: (testOrigin.Lat + testDest.Lat) / 2}
	path := geo.Polyline{testOrigin, mid, testDest}
	return geo.EncodePolyline(path)
}

// fakeEngineServer always returns a single, fixed straight-line trip from
// /route, regardless of costing or exclusion polygons — tests observe the
// orchestrator's validation/retry behavior against risk zones, not the
// engine's actual routing.
func fakeEngineServer(t *testing.T) (*valhalla.Client, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/route":
			_, _ = w.Write([]byte(`{"trip":{"legs":[{"summary":{"time":300,"length":1.3},"shape":"` + straightShape() + `"}],"summary":{"time":300,"length":1.3}}}`))
		case "/trace_attributes":
			_, _ = w.Write([]byte(`{"edges":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	client := valhalla.NewClient(&valhalla.ClientConfig{Endpoint: server.URL})
	return client, server.Close
}

type fakeRiskSource struct {
	zones []riskzone.RawZone
	err   error
}

func (f *fakeRiskSource) FetchActiveZones(ctx context.Context) ([]riskzone.RawZone, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.zones, nil
}

type fakeBikeSource struct {
	segments []bikelane.RawSegment
	err      error
}

func (f *fakeBikeSource) FetchSegments(ctx context.Context) ([]bikelane.RawSegment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.segments, nil
}

func newTestOrchestrator(t *testing.T, zones []riskzone.RawZone) (*routing.Orchestrator, func()) {
	t.Helper()
	client, closeFn := fakeEngineServer(t)
	riskSvc := riskzone.NewService(&fakeRiskSource{zones: zones}, time.Minute, nil)
	bikeSvc := bikelane.NewService(&fakeBikeSource{}, time.Minute, nil)
	return routing.NewOrchestrator(client, riskSvc, bikeSvc, nil, false, 0, 0), closeFn
}

func baseRequest(profile routing.RouteProfile) routing.RouteRequest {
	return routing.RouteRequest{
		Origin:      testOrigin,
		Destination: testDest,
		VehicleType: routing.VehicleBike,
		Preferences: routing.RoutePreferences{Profile: profile},
		AvoidRiskZones: true,
	}
}

func TestCalculateSafestCleanRouteNoHazards(t *testing.T) {
	orch, closeFn := newTestOrchestrator(t, nil)
	defer closeFn()

	resp, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileSafest))
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	assert.Greater(t, resp.Summary.DistanceMeters, 0)
	assert.NotEqual(t, uuid.Nil, resp.RouteID)
}

func TestCalculateFastestIgnoresHazardsOnPath(t *testing.T) {
	mid := geo.Coordinate{Lon: (testOrigin.Lon + testDest.Lon) / 2, Lat: (testOrigin.Lat + testDest.Lat) / 2}
	zones := []riskzone.RawZone{{ID: "z1", Lon: mid.Lon, Lat: mid.Lat, RadiusMeters: 500, ReportedCount: 250}}
	orch, closeFn := newTestOrchestrator(t, zones)
	defer closeFn()

	resp, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileFastest))
	require.NoError(t, err)
	// FASTEST still reports the hazard for awareness even though it never re-routed around it.
	assert.Equal(t, 1, resp.RiskAnalysis.TotalRiskZones)
}

func TestCalculateSafestDegradesWhenHazardUnavoidable(t *testing.T) {
	// Since fakeEngineServer always returns the same straight-line trip no
	// matter the exclusion polygons, a hazard directly on that line can
	// never be routed around — the pipeline must exhaust every stage and
	// degrade rather than fail.
	mid := geo.Coordinate{Lon: (testOrigin.Lon + testDest.Lon) / 2, Lat: (testOrigin.Lat + testDest.Lat) / 2}
	zones := []riskzone.RawZone{{ID: "z1", Lon: mid.Lon, Lat: mid.Lat, RadiusMeters: 50, ReportedCount: 250}}
	orch, closeFn := newTestOrchestrator(t, zones)
	defer closeFn()

	resp, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileSafest))
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "DEGRADED_ROUTE", resp.Warnings[0].Code)
}

func TestCalculatePlainRouteSkipsAvoidanceWhenOptedOut(t *testing.T) {
	mid := geo.Coordinate{Lon: (testOrigin.Lon + testDest.Lon) / 2, Lat: (testOrigin.Lat + testDest.Lat) / 2}
	zones := []riskzone.RawZone{{ID: "z1", Lon: mid.Lon, Lat: mid.Lat, RadiusMeters: 50, ReportedCount: 250}}
	orch, closeFn := newTestOrchestrator(t, zones)
	defer closeFn()

	req := baseRequest(routing.ProfileSafest)
	req.AvoidRiskZones = false
	resp, err := orch.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
}

func TestCalculatePropagatesRiskZoneUnavailable(t *testing.T) {
	client, closeFn := fakeEngineServer(t)
	defer closeFn()
	riskSvc := riskzone.NewService(&fakeRiskSource{err: errors.New("db down")}, time.Minute, nil)
	bikeSvc := bikelane.NewService(&fakeBikeSource{}, time.Minute, nil)
	orch := routing.NewOrchestrator(client, riskSvc, bikeSvc, nil, false, 0, 0)

	_, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileSafest))
	require.Error(t, err)
	routingErr, ok := routing.AsError(err)
	require.True(t, ok)
	assert.Equal(t, routing.KindRiskZoneUnavailable, routingErr.Kind)
}

func TestCalculatePropagatesEngineUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	client := valhalla.NewClient(&valhalla.ClientConfig{Endpoint: server.URL})
	riskSvc := riskzone.NewService(&fakeRiskSource{}, time.Minute, nil)
	bikeSvc := bikelane.NewService(&fakeBikeSource{}, time.Minute, nil)
	orch := routing.NewOrchestrator(client, riskSvc, bikeSvc, nil, false, 0, 0)

	_, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileFastest))
	require.Error(t, err)
	routingErr, ok := routing.AsError(err)
	require.True(t, ok)
	assert.Equal(t, routing.KindEngineUnavailable, routingErr.Kind)
}

func TestAlternativesFastestSlotHasLowestDuration(t *testing.T) {
	orch, closeFn := newTestOrchestrator(t, nil)
	defer closeFn()

	resp, err := orch.Alternatives(context.Background(), baseRequest(routing.ProfileBalanced))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Routes)
	fastest := resp.Routes[resp.Comparison.FastestIndex]
	for i, r := range resp.Routes {
		if i == resp.Comparison.FastestIndex {
			continue
		}
		assert.LessOrEqual(t, fastest.Summary.DurationSeconds, r.Summary.DurationSeconds)
	}
}

func TestDevMockRoutesBypassesEngine(t *testing.T) {
	riskSvc := riskzone.NewService(&fakeRiskSource{err: errors.New("unreachable")}, time.Minute, nil)
	bikeSvc := bikelane.NewService(&fakeBikeSource{}, time.Minute, nil)
	orch := routing.NewOrchestrator(nil, riskSvc, bikeSvc, nil, true, 0, 0)

	resp, err := orch.Calculate(context.Background(), baseRequest(routing.ProfileSafest))
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "DEV_MOCK_ROUTE", resp.Warnings[0].Code)
}

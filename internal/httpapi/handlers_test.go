package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/httpapi"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/routing"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

type fakeRiskSource struct {
	zones []riskzone.RawZone
	err   error
}

func (s *fakeRiskSource) FetchActiveZones(ctx context.Context) ([]riskzone.RawZone, error) {
	return s.zones, s.err
}

type fakeBikeSource struct{}

func (s *fakeBikeSource) FetchSegments(ctx context.Context) ([]bikelane.RawSegment, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, riskSource *fakeRiskSource) (*httptest.Server, func()) {
	t.Helper()

	engineServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusOK)
		case "/route":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"trip":{"legs":[{"summary":{"time":300,"length":1.5},"shape":"_p~iF~ps|U"}],"summary":{"time":300,"length":1.5}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	engine := valhalla.NewClient(&valhalla.ClientConfig{Endpoint: engineServer.URL})
	riskSvc := riskzone.NewService(riskSource, time.Minute, nil)
	bikeSvc := bikelane.NewService(&fakeBikeSource{}, time.Minute, nil)
	orchestrator := routing.NewOrchestrator(engine, riskSvc, bikeSvc, nil, false, 0, 0)

	handlers := httpapi.New(orchestrator, riskSvc, bikeSvc, engine, nil)
	router := httpapi.NewRouter(handlers)
	apiServer := httptest.NewServer(router)

	return apiServer, func() {
		apiServer.Close()
		engineServer.Close()
	}
}

func TestHealthIsAlwaysOK(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthReadyUnavailableWhenRiskZonesFail(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{err: assert.AnError})
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthReadyOKWhenDependenciesHealthy(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListRiskZonesRequiresBBox(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/risk-zones")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListRiskZonesFiltersByBBox(t *testing.T) {
	riskSource := &fakeRiskSource{zones: []riskzone.RawZone{
		{ID: "in-bbox", Lon: -122.41, Lat: 37.78, RadiusMeters: 50, ReportedCount: 10, HazardType: riskzone.HazardTypeCrashHistory},
		{ID: "out-of-bbox", Lon: -122.60, Lat: 37.90, RadiusMeters: 50, ReportedCount: 10, HazardType: riskzone.HazardTypeCrashHistory},
	}}
	server, closeFn := newTestRouter(t, riskSource)
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/risk-zones?bbox=-122.52,37.70,-122.35,37.82")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var zones []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&zones))
	require.Len(t, zones, 1)
	assert.Equal(t, "in-bbox", zones[0].ID)
}

func TestNearRiskZonesRejectsOutOfRangeRadius(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Get(server.URL + "/api/v1/risk-zones/near?lat=37.78&lon=-122.41&radius=5000")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculateRouteRejectsMalformedBody(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Post(server.URL+"/api/v1/routes/calculate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCalculateRouteEchoesRequestID(t *testing.T) {
	server, closeFn := newTestRouter(t, &fakeRiskSource{})
	defer closeFn()

	resp, err := http.Post(server.URL+"/api/v1/routes/calculate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

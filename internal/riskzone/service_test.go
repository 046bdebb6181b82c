package riskzone_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
)

type fakeSource struct {
	zones []riskzone.RawZone
	err   error
	calls int
}

func (f *fakeSource) FetchActiveZones(ctx context.Context) ([]riskzone.RawZone, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.zones, nil
}

func zone(id string, lon, lat float64, reportedCount int) riskzone.RawZone {
	return riskzone.RawZone{ID: id, Lon: lon, Lat: lat, RadiusMeters: 100, ReportedCount: reportedCount}
}

func TestLoadClassifiesSeverity(t *testing.T) {
	src := &fakeSource{zones: []riskzone.RawZone{
		zone("low", 0, 0, 100),
		zone("medium", 0, 0, 165),
		zone("high", 0, 0, 200),
		zone("critical", 0, 0, 250),
	}}
	svc := riskzone.NewService(src, time.Minute, nil)

	snap, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Zones, 4)

	bySeverity := map[string]riskzone.Severity{}
	for _, z := range snap.Zones {
		bySeverity[z.ID] = z.Severity
	}
	assert.Equal(t, riskzone.SeverityLow, bySeverity["low"])
	assert.Equal(t, riskzone.SeverityMedium, bySeverity["medium"])
	assert.Equal(t, riskzone.SeverityHigh, bySeverity["high"])
	assert.Equal(t, riskzone.SeverityCritical, bySeverity["critical"])
}

func TestLoadServesStaleOnRefreshFailure(t *testing.T) {
	src := &fakeSource{zones: []riskzone.RawZone{zone("a", 0, 0, 200)}}
	svc := riskzone.NewService(src, time.Millisecond, nil)

	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	src.err = errors.New("boom")

	snap, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Zones, 1)
}

func TestLoadPropagatesErrorWithNoCache(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	svc := riskzone.NewService(src, time.Minute, nil)

	_, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, riskzone.ErrUnavailable))
}

func TestFilterBySeverityThresholds(t *testing.T) {
	zones := []riskzone.Zone{
		{ID: "a", ReportedCount: 139},
		{ID: "b", ReportedCount: 140},
		{ID: "c", ReportedCount: 179},
		{ID: "d", ReportedCount: 229},
		{ID: "e", ReportedCount: 230},
	}

	low := riskzone.FilterBySeverity(zones, riskzone.SeverityLow)
	assert.Len(t, low, 4)

	high := riskzone.FilterBySeverity(zones, riskzone.SeverityHigh)
	assert.Len(t, high, 2)

	critical := riskzone.FilterBySeverity(zones, riskzone.SeverityCritical)
	assert.Len(t, critical, 1)
}

func TestValidateDetectsViolation(t *testing.T) {
	zones := []riskzone.Zone{
		{ID: "z1", Center: geo.Coordinate{Lon: 0, Lat: 0}, RadiusMeters: 100, ReportedCount: 200, Severity: riskzone.SeverityHigh},
	}
	route := geo.Polyline{
		{Lon: 0, Lat: 0},
		{Lon: 0.01, Lat: 0.01},
	}
	result := riskzone.Validate(route, zones, riskzone.SeverityLow, 0.25)
	assert.False(t, result.Valid)
	assert.Equal(t, 1, result.ViolationCount)
}

func TestValidateCleanRoute(t *testing.T) {
	zones := []riskzone.Zone{
		{ID: "z1", Center: geo.Coordinate{Lon: 10, Lat: 10}, RadiusMeters: 100, ReportedCount: 200, Severity: riskzone.SeverityHigh},
	}
	route := geo.Polyline{
		{Lon: 0, Lat: 0},
		{Lon: 0.01, Lat: 0.01},
	}
	result := riskzone.Validate(route, zones, riskzone.SeverityLow, 0.25)
	assert.True(t, result.Valid)
	assert.Equal(t, 0, result.ViolationCount)
}

func TestScoreEmptyInputsAreZero(t *testing.T) {
	assert.Equal(t, riskzone.ScoreResult{}, riskzone.Score(nil, nil, 0.25))
}

func TestBuildExclusionBatchesRespectsBudget(t *testing.T) {
	var zones []riskzone.RawZone
	for i := 0; i < 50; i++ {
		zones = append(zones, zone("z", float64(i)*0.001, 0, 200))
	}
	src := &fakeSource{zones: zones}
	svc := riskzone.NewService(src, time.Minute, nil)

	batches, err := svc.BuildExclusionBatches(context.Background(), riskzone.ExclusionOptions{MinSeverity: riskzone.SeverityLow})
	require.NoError(t, err)
	require.NotEmpty(t, batches)

	for _, batch := range batches {
		var total float64
		for range batch {
			total += geo.Circumference(100 * 1.5)
		}
		assert.LessOrEqual(t, total, riskzone.MaxBatchCircumferenceMeters+1e-6)
	}
}

package bikelane_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/geo"
)

type fakeSource struct {
	segments []bikelane.RawSegment
	err      error
	calls    int
}

func (f *fakeSource) FetchSegments(ctx context.Context) ([]bikelane.RawSegment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.segments, nil
}

func laneAlongLat(lat float64) bikelane.RawSegment {
	return bikelane.RawSegment{
		Class: "CLASS II",
		Geometry: geo.Polyline{
			{Lon: -10, Lat: lat},
			{Lon: 10, Lat: lat},
		},
	}
}

func TestCoverageFullyOnBikeLane(t *testing.T) {
	src := &fakeSource{segments: []bikelane.RawSegment{laneAlongLat(0)}}
	svc := bikelane.NewService(src, time.Minute, nil)

	route := geo.Polyline{{Lon: 0, Lat: 0}, {Lon: 0.01, Lat: 0}}
	result, err := svc.Coverage(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.BikeLanePercentage)
	assert.Equal(t, 1, result.SegmentsOnBikeLane)
}

func TestCoverageFarFromBikeLane(t *testing.T) {
	src := &fakeSource{segments: []bikelane.RawSegment{laneAlongLat(0)}}
	svc := bikelane.NewService(src, time.Minute, nil)

	route := geo.Polyline{{Lon: 0, Lat: 5}, {Lon: 0.01, Lat: 5}}
	result, err := svc.Coverage(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.BikeLanePercentage)
	assert.Equal(t, 0, result.SegmentsOnBikeLane)
}

func TestCoverageExcludesClassIII(t *testing.T) {
	src := &fakeSource{segments: []bikelane.RawSegment{
		{Class: "CLASS III", Geometry: geo.Polyline{{Lon: -10, Lat: 0}, {Lon: 10, Lat: 0}}},
	}}
	svc := bikelane.NewService(src, time.Minute, nil)

	route := geo.Polyline{{Lon: 0, Lat: 0}, {Lon: 0.01, Lat: 0}}
	result, err := svc.Coverage(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.BikeLanePercentage)
}

func TestCoverageShortRouteIsZeroValue(t *testing.T) {
	svc := bikelane.NewService(&fakeSource{}, time.Minute, nil)
	result, err := svc.Coverage(context.Background(), geo.Polyline{{Lon: 0, Lat: 0}})
	require.NoError(t, err)
	assert.Equal(t, bikelane.CoverageResult{}, result)
}

func TestLoadServesStaleOnRefreshFailure(t *testing.T) {
	src := &fakeSource{segments: []bikelane.RawSegment{laneAlongLat(0)}}
	svc := bikelane.NewService(src, time.Millisecond, nil)

	require.NoError(t, svc.Load(context.Background()))
	time.Sleep(5 * time.Millisecond)
	src.err = errors.New("boom")

	require.NoError(t, svc.Load(context.Background()))
}

func TestLoadColdStartFailureDegradesToEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	svc := bikelane.NewService(src, time.Minute, nil)

	require.NoError(t, svc.Load(context.Background()))
	result, err := svc.Coverage(context.Background(), geo.Polyline{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}})
	require.NoError(t, err)
	assert.Equal(t, bikelane.CoverageResult{}, result)
}

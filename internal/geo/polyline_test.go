package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

func TestDecodePolylineGoogleGolden(t *testing.T) {
	// The engine encodes at precision 6, so this vector is the precision-6
	// encoding of Google's (38.5,-120.2) (40.7,-120.95) (43.252,-126.453)
	// example, not Google's own precision-5 string.
	encoded := "_izlhA~rlgdF_{geC~ywl@_kwzCn`{nI"

	got := geo.DecodePolyline(encoded)

	want := geo.Polyline{
		{Lon: -120.2, Lat: 38.5},
		{Lon: -120.95, Lat: 40.7},
		{Lon: -126.453, Lat: 43.252},
	}

	assert.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].Lon, got[i].Lon, 1e-6)
		assert.InDelta(t, want[i].Lat, got[i].Lat, 1e-6)
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	assert.Nil(t, geo.DecodePolyline(""))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := geo.Polyline{
		{Lon: -122.419, Lat: 37.7749},
		{Lon: -122.420, Lat: 37.7755},
		{Lon: -122.421, Lat: 37.7760},
	}
	encoded := geo.EncodePolyline(original)
	decoded := geo.DecodePolyline(encoded)

	assert.Len(t, decoded, len(original))
	for i := range original {
		assert.InDelta(t, original[i].Lon, decoded[i].Lon, 1e-6)
		assert.InDelta(t, original[i].Lat, decoded[i].Lat, 1e-6)
	}
}

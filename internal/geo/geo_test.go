package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

func TestHaversineMetersZero(t *testing.T) {
	p := geo.Coordinate{Lon: -122.419, Lat: 37.7749}
	assert.InDelta(t, 0.0, geo.HaversineMeters(p, p), 1e-9)
}

func TestHaversineMetersKnownDistance(t *testing.T) {
	// Roughly 1 degree of latitude near the equator is ~111.2km.
	a := geo.Coordinate{Lon: 0, Lat: 0}
	b := geo.Coordinate{Lon: 0, Lat: 1}
	d := geo.HaversineMeters(a, b)
	assert.InDelta(t, 111195.0, d, 500)
}

func TestMakeCircularPolygonClosedAndSized(t *testing.T) {
	center := geo.Coordinate{Lon: -122.42, Lat: 37.77}
	poly := geo.MakeCircularPolygon(center, 150, 8)

	assert.Len(t, poly, 9) // 8 vertices + closing point
	assert.Equal(t, poly[0], poly[len(poly)-1])

	for _, v := range poly {
		d := geo.HaversineMeters(center, v)
		assert.InDelta(t, 150.0, d, 5.0)
	}
}

func TestPerpendicularUnitIsOrthogonal(t *testing.T) {
	a := geo.Coordinate{Lat: 0, Lon: 0}
	b := geo.Coordinate{Lat: 1, Lon: 0}
	p1, p2 := geo.PerpendicularUnit(a, b)

	dot := p1.Lat*(b.Lat-a.Lat) + p1.Lon*(b.Lon-a.Lon)
	assert.InDelta(t, 0.0, dot, 1e-9)
	assert.InDelta(t, p1.Lat, -p2.Lat, 1e-9)
	assert.InDelta(t, p1.Lon, -p2.Lon, 1e-9)
}

func TestPerpendicularUnitDegenerate(t *testing.T) {
	a := geo.Coordinate{Lat: 1, Lon: 1}
	p1, p2 := geo.PerpendicularUnit(a, a)
	assert.Equal(t, geo.Coordinate{Lat: 0, Lon: 1}, p1)
	assert.Equal(t, geo.Coordinate{Lat: 0, Lon: -1}, p2)
}

func TestCircumference(t *testing.T) {
	assert.InDelta(t, 2*math.Pi*100, geo.Circumference(100), 1e-9)
}

func TestNearestIndex(t *testing.T) {
	path := geo.Polyline{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 1},
		{Lon: 0, Lat: 2},
	}
	idx := geo.NearestIndex(path, geo.Coordinate{Lon: 0, Lat: 1.9})
	assert.Equal(t, 2, idx)
}

// Package geo implements the geodesy primitives the routing gateway relies
// on: great-circle distance, the two distinct degree-per-meter conventions
// used elsewhere in the gateway, and the perpendicular-offset construction
// used to generate avoidance waypoints.
//
// The numeric constants below are load-bearing contracts, not tuning knobs:
// changing them changes where routes get excluded and how far waypoints get
// pushed off a risk zone. They are kept exactly as measured against SF
// latitudes by the system this gateway reimplements.
package geo

import "math"

// EarthRadiusMeters is the sphere radius used for haversine distance.
const EarthRadiusMeters = 6371000.0

// MetersPerDegreeLat is used when synthesizing circular exclusion polygons:
// it assumes 1 degree of latitude is ~111km everywhere, and corrects
// longitude by cos(latitude).
const MetersPerDegreeLat = 111000.0

// MetersPerDegreeFlat is the flat, uncorrected approximation used only for
// bike-lane coverage sampling (SF-latitude average of lat/lon degree
// lengths). It is intentionally cruder than MetersPerDegreeLat and must not
// be unified with it — the two call sites tolerate different error budgets.
const MetersPerDegreeFlat = 90000.0

// Coordinate is a (longitude, latitude) pair in WGS84 degrees, stored in
// GeoJSON order ([lon, lat]) to match every wire format this gateway speaks.
type Coordinate struct {
	Lon float64 `validate:"gte=-180,lte=180"`
	Lat float64 `validate:"gte=-90,lte=90"`
}

// Polygon is a closed ring of coordinates; by convention the first and last
// points are equal.
type Polygon []Coordinate

// Polyline is an ordered sequence of coordinates describing a path.
type Polyline []Coordinate

// HaversineMeters returns the great-circle distance between two points in
// meters.
func HaversineMeters(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// simpleDistance is the fast, non-metric Euclidean distance in raw degree
// space. It is not a meter distance; callers that need meters either use
// HaversineMeters or convert a meter threshold to degrees first (as
// bike-lane coverage does with MetersPerDegreeFlat).
func simpleDistance(aLat, aLon, bLat, bLon float64) float64 {
	dLat := bLat - aLat
	dLon := bLon - aLon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// SimpleDistance exposes simpleDistance for callers outside the package
// that need the same degree-space comparison (route-local nearest-point
// search, on-path bounding checks).
func SimpleDistance(a, b Coordinate) float64 {
	return simpleDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// MakeCircularPolygon synthesizes an n-vertex closed polygon approximating a
// circle of radiusMeters around center, using the MetersPerDegreeLat
// convention with a cos(lat) longitude correction.
func MakeCircularPolygon(center Coordinate, radiusMeters float64, numPoints int) Polygon {
	latOffset := radiusMeters / MetersPerDegreeLat
	lonOffset := radiusMeters / (MetersPerDegreeLat * math.Cos(center.Lat*math.Pi/180))

	coords := make(Polygon, 0, numPoints+1)
	for i := 0; i < numPoints; i++ {
		angle := (2 * math.Pi * float64(i)) / float64(numPoints)
		coords = append(coords, Coordinate{
			Lon: center.Lon + lonOffset*math.Cos(angle),
			Lat: center.Lat + latOffset*math.Sin(angle),
		})
	}
	coords = append(coords, coords[0])
	return coords
}

// Circumference returns the circumference in meters of the circle a
// MakeCircularPolygon call with this radius would approximate — used to
// track the exclusion-batch circumference budget without synthesizing the
// polygon itself.
func Circumference(radiusMeters float64) float64 {
	return 2 * math.Pi * radiusMeters
}

// PerpendicularUnit returns the two unit vectors (in degree space)
// perpendicular to the direction from a to b. If a and b coincide, it
// returns (0,1) and its negation as a stable default.
func PerpendicularUnit(a, b Coordinate) (p1, p2 Coordinate) {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon
	mag := math.Sqrt(dLat*dLat + dLon*dLon)
	if mag == 0 {
		return Coordinate{Lat: 0, Lon: 1}, Coordinate{Lat: 0, Lon: -1}
	}
	p1 = Coordinate{Lat: -dLon / mag, Lon: dLat / mag}
	p2 = Coordinate{Lat: dLon / mag, Lon: -dLat / mag}
	return p1, p2
}

// Offset returns center shifted by offsetDegrees along unit direction dir,
// where dir is expressed in the same (Lat, Lon) convention as
// PerpendicularUnit's return values.
func Offset(center Coordinate, dir Coordinate, offsetDegrees float64) Coordinate {
	return Coordinate{
		Lat: center.Lat + dir.Lat*offsetDegrees,
		Lon: center.Lon + dir.Lon*offsetDegrees,
	}
}

// NearestIndex returns the index of the point in path closest (in meters)
// to target, using haversine distance.
func NearestIndex(path Polyline, target Coordinate) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range path {
		d := HaversineMeters(c, target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// LocalDirection returns the route-local direction vector at index idx of
// path, preferring the centered difference (idx-1, idx+1) and falling back
// to a one-sided difference at the ends.
func LocalDirection(path Polyline, idx int) Coordinate {
	n := len(path)
	switch {
	case n < 2:
		return Coordinate{Lat: 0, Lon: 1}
	case idx > 0 && idx < n-1:
		return Coordinate{
			Lat: path[idx+1].Lat - path[idx-1].Lat,
			Lon: path[idx+1].Lon - path[idx-1].Lon,
		}
	case idx > 0:
		return Coordinate{
			Lat: path[idx].Lat - path[idx-1].Lat,
			Lon: path[idx].Lon - path[idx-1].Lon,
		}
	default:
		j := 1
		if j >= n {
			j = n - 1
		}
		return Coordinate{
			Lat: path[j].Lat - path[0].Lat,
			Lon: path[j].Lon - path[0].Lon,
		}
	}
}

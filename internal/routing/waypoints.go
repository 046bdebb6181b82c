package routing

import (
	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
)

// detourRatioThreshold bounds how much longer a path through a zone may be
// relative to the direct origin-destination distance for that zone to
// count as "on the path" for broad waypoint avoidance.
const detourRatioThreshold = 1.5

// pathBoundingBoxBuffer widens the origin/destination bounding box (in
// degrees) before testing zone membership.
const pathBoundingBoxBuffer = 0.01

// findZonesOnPath returns the zones roughly between origin and dest: inside
// a buffered bounding box and within detourRatioThreshold of the direct
// path via the zone.
func findZonesOnPath(origin, dest geo.Coordinate, zones []riskzone.Zone) []riskzone.Zone {
	minLat, maxLat := minF(origin.Lat, dest.Lat)-pathBoundingBoxBuffer, maxF(origin.Lat, dest.Lat)+pathBoundingBoxBuffer
	minLon, maxLon := minF(origin.Lon, dest.Lon)-pathBoundingBoxBuffer, maxF(origin.Lon, dest.Lon)+pathBoundingBoxBuffer

	directDist := geo.SimpleDistance(origin, dest)

	var onPath []riskzone.Zone
	for _, z := range zones {
		if z.Center.Lat < minLat || z.Center.Lat > maxLat || z.Center.Lon < minLon || z.Center.Lon > maxLon {
			continue
		}
		if directDist == 0 {
			onPath = append(onPath, z)
			continue
		}
		detour := (geo.SimpleDistance(origin, z.Center) + geo.SimpleDistance(z.Center, dest)) / directDist
		if detour < detourRatioThreshold {
			onPath = append(onPath, z)
		}
	}
	return onPath
}

// scoreWaypoint scores a candidate waypoint by its minimum degree-space
// distance to any zone center; higher is better (farther from hazards).
func scoreWaypoint(wp geo.Coordinate, zones []riskzone.Zone) float64 {
	if len(zones) == 0 {
		return 1.0
	}
	best := geo.SimpleDistance(wp, zones[0].Center)
	for _, z := range zones[1:] {
		if d := geo.SimpleDistance(wp, z.Center); d < best {
			best = d
		}
	}
	return best
}

// betterWaypoint picks whichever of a, b scores higher against zones.
func betterWaypoint(a, b geo.Coordinate, zones []riskzone.Zone) geo.Coordinate {
	if scoreWaypoint(a, zones) > scoreWaypoint(b, zones) {
		return a
	}
	return b
}

// perpendicularAxis returns the normalized perpendicular to the
// origin->dest direction, falling back to (0,1) when origin==dest.
func perpendicularAxis(origin, dest geo.Coordinate) (geo.Coordinate, geo.Coordinate) {
	return geo.PerpendicularUnit(origin, dest)
}

// generateAvoidanceWaypoints enumerates single-waypoint candidates around a
// zone cluster centroid and around the origin-destination midpoint, at
// several offsets, each compared against its mirror across the path: for
// the four nearest cluster offsets both sides are kept, better first; for
// the midpoint and the two farthest cluster offsets only the better side is
// kept — matching the original's layered offset table.
func generateAvoidanceWaypoints(origin, dest geo.Coordinate, clusterCenter geo.Coordinate, allZones []riskzone.Zone) []geo.Coordinate {
	perp1, perp2 := perpendicularAxis(origin, dest)

	var waypoints []geo.Coordinate
	for _, offset := range []float64{0.01, 0.02, 0.03, 0.04} {
		wp1 := offsetBy(clusterCenter, perp1, offset)
		wp2 := offsetBy(clusterCenter, perp2, offset)
		if scoreWaypoint(wp1, allZones) > scoreWaypoint(wp2, allZones) {
			waypoints = append(waypoints, wp1, wp2)
		} else {
			waypoints = append(waypoints, wp2, wp1)
		}
	}

	mid := geo.Coordinate{Lon: (origin.Lon + dest.Lon) / 2, Lat: (origin.Lat + dest.Lat) / 2}
	for _, offset := range []float64{0.015, 0.03} {
		waypoints = append(waypoints, betterWaypoint(offsetBy(mid, perp1, offset), offsetBy(mid, perp2, offset), allZones))
	}

	for _, offset := range []float64{0.05, 0.06} {
		waypoints = append(waypoints, betterWaypoint(offsetBy(clusterCenter, perp1, offset), offsetBy(clusterCenter, perp2, offset), allZones))
	}

	if len(waypoints) > 12 {
		waypoints = waypoints[:12]
	}
	return waypoints
}

func offsetBy(center, axis geo.Coordinate, offsetDegrees float64) geo.Coordinate {
	return geo.Coordinate{
		Lon: center.Lon + axis.Lon*offsetDegrees,
		Lat: center.Lat + axis.Lat*offsetDegrees,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

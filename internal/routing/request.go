package routing

import (
	"github.com/gotidy/ptr"

	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

// engineCosting is always bicycle: scooter/bike/ebike all map onto the
// bicycle costing model.
const engineCosting = valhalla.RouteInputCostingBicycle

// elevationIntervalMeters is the sampling interval requested from the
// engine and the divisor used when recovering grade from the returned
// elevation series.
const elevationIntervalMeters = 30.0

func breakLocation(c geo.Coordinate) *valhalla.RouteInputLocation {
	return &valhalla.RouteInputLocation{
		Lat:  ptr.Float64(c.Lat),
		Lon:  ptr.Float64(c.Lon),
		Type: ptr.String(valhalla.RouteInputLocationTypeBreak),
	}
}

func throughLocation(c geo.Coordinate) *valhalla.RouteInputLocation {
	return &valhalla.RouteInputLocation{
		Lat:  ptr.Float64(c.Lat),
		Lon:  ptr.Float64(c.Lon),
		Type: ptr.String(valhalla.RouteInputLocationTypeThrough),
	}
}

func excludePolygonInputs(polygons []geo.Polygon) []valhalla.RouteInputExcludePolygon {
	if len(polygons) == 0 {
		return nil
	}
	out := make([]valhalla.RouteInputExcludePolygon, 0, len(polygons))
	for _, p := range polygons {
		ring := make([][]float64, 0, len(p))
		for _, c := range p {
			ring = append(ring, []float64{c.Lon, c.Lat})
		}
		out = append(out, ring)
	}
	return out
}

// baseRequest builds the two-break-location request the majority of
// candidate generation starts from.
func baseRequest(req RouteRequest, options bicycleOptions, exclude []geo.Polygon) *valhalla.RouteInput {
	return &valhalla.RouteInput{
		Locations:         []*valhalla.RouteInputLocation{breakLocation(req.Origin), breakLocation(req.Destination)},
		Costing:           ptr.String(engineCosting),
		CostingOptions:    options.toCostingOptions(),
		DirectionsOptions: &valhalla.RouteInputDirectionsOptions{Units: ptr.String("kilometers"), Language: ptr.String("en-US")},
		ExcludePolygons:   excludePolygonInputs(exclude),
		ElevationInterval: ptr.Float64(elevationIntervalMeters),
		Format:            ptr.String("json"),
	}
}

func withAlternates(input *valhalla.RouteInput, n int) *valhalla.RouteInput {
	input.Alternates = ptr.Int(n)
	return input
}

// waypointRequest routes through a single `through` waypoint between the
// two break locations.
func waypointRequest(req RouteRequest, waypoint geo.Coordinate, exclude []geo.Polygon) *valhalla.RouteInput {
	input := baseRequest(req, waypointOptions, exclude)
	input.Locations = []*valhalla.RouteInputLocation{
		breakLocation(req.Origin),
		throughLocation(waypoint),
		breakLocation(req.Destination),
	}
	return input
}

// multiWaypointRequest chains several `through` waypoints between the two
// break locations.
func multiWaypointRequest(req RouteRequest, waypoints []geo.Coordinate, exclude []geo.Polygon) *valhalla.RouteInput {
	input := baseRequest(req, multiWaypointOptions, exclude)
	locations := make([]*valhalla.RouteInputLocation, 0, len(waypoints)+2)
	locations = append(locations, breakLocation(req.Origin))
	for _, wp := range waypoints {
		locations = append(locations, throughLocation(wp))
	}
	locations = append(locations, breakLocation(req.Destination))
	input.Locations = locations
	return input
}

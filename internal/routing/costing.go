package routing

import (
	"github.com/gotidy/ptr"

	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

// bicycleOptions is the loosely-typed shorthand used throughout the
// orchestrator's candidate tables before being lowered to the engine's
// CostingModelOptionsBicycle wire type.
type bicycleOptions struct {
	BicycleType      string
	UseRoads         float32
	UseHills         float32
	AvoidBadSurfaces float32
	Shortest         bool
}

func (o bicycleOptions) toCostingOptions() *valhalla.RouteInputCostingOptions {
	return &valhalla.RouteInputCostingOptions{
		Bicycle: &valhalla.CostingModelOptionsBicycle{
			CostingModelOptionsBicycleBase: valhalla.CostingModelOptionsBicycleBase{
				Shortest: ptr.Bool(o.Shortest),
			},
			BicycleType:      ptr.String(o.BicycleType),
			UseRoads:         ptr.Float32(o.UseRoads),
			UseHills:         ptr.Float32(o.UseHills),
			AvoidBadSurfaces: ptr.Float32(o.AvoidBadSurfaces),
		},
	}
}

// buildCostingOptions implements the profile -> engine-bias table, with the
// avoid_hills/prefer_bike_lanes overrides applied last so they always win.
func buildCostingOptions(prefs RoutePreferences, vehicle VehicleType) bicycleOptions {
	bicycleType := "Hybrid"
	if vehicle == VehicleBike {
		bicycleType = "Road"
	}

	opts := bicycleOptions{BicycleType: bicycleType, UseRoads: 0.5, UseHills: 0.5, AvoidBadSurfaces: 0.5}

	switch prefs.Profile {
	case ProfileSafest:
		opts.UseRoads, opts.UseHills, opts.AvoidBadSurfaces = 0.5, 0.3, 0.6
	case ProfileBalanced:
		opts.UseRoads, opts.UseHills, opts.AvoidBadSurfaces = 0.5, 0.5, 0.5
	case ProfileFastest:
		opts.UseRoads, opts.UseHills, opts.AvoidBadSurfaces = 1.0, 1.0, 0.0
	case ProfileScenic:
		opts.UseRoads, opts.UseHills, opts.AvoidBadSurfaces = 0.3, 0.4, 0.6
	}

	if prefs.PreferBikeLanes {
		opts.UseRoads = 0.0
	}
	if prefs.AvoidHills {
		opts.UseHills = 0.1
	}

	return opts
}

// safestRouteOptions is the ~5-variant costing table stage 1 of
// avoidanceRoute submits per exclusion batch, mixing bicycle subtype and
// roads/hills/surfaces bias.
var safestRouteOptions = []bicycleOptions{
	{BicycleType: "Road", UseRoads: 0.5, UseHills: 0.3, AvoidBadSurfaces: 0.5},
	{BicycleType: "Hybrid", UseRoads: 0.4, UseHills: 0.4, AvoidBadSurfaces: 0.6},
	{BicycleType: "Cross", UseRoads: 0.6, UseHills: 0.5, AvoidBadSurfaces: 0.4},
	{BicycleType: "Hybrid", UseRoads: 0.2, UseHills: 0.3, AvoidBadSurfaces: 0.7},
	{BicycleType: "Road", UseRoads: 0.3, UseHills: 0.2, AvoidBadSurfaces: 0.8},
}

// shortestVariant is tried additionally when a single exclusion batch
// covers every relevant zone.
var shortestVariant = bicycleOptions{BicycleType: "Road", UseRoads: 0.3, UseHills: 0.2, AvoidBadSurfaces: 0.5, Shortest: true}

// scenicRouteOptions is the stage-1 costing table used for SCENIC profile
// avoidance routes: each variant biases further from arterial roads than
// safestRouteOptions, trading some directness for quieter streets.
var scenicRouteOptions = []bicycleOptions{
	{BicycleType: "Hybrid", UseRoads: 0.3, UseHills: 0.4, AvoidBadSurfaces: 0.6},
	{BicycleType: "Cross", UseRoads: 0.2, UseHills: 0.3, AvoidBadSurfaces: 0.7},
	{BicycleType: "Road", UseRoads: 0.4, UseHills: 0.5, AvoidBadSurfaces: 0.5},
	{BicycleType: "Hybrid", UseRoads: 0.15, UseHills: 0.3, AvoidBadSurfaces: 0.8},
	{BicycleType: "Cross", UseRoads: 0.25, UseHills: 0.4, AvoidBadSurfaces: 0.6},
}

// bikeLanePreferredOptions is the four-variant table bikeLanePreferred runs,
// each depressing use_roads progressively less aggressively.
var bikeLanePreferredOptions = []bicycleOptions{
	{BicycleType: "Hybrid", UseRoads: 0.0, UseHills: 0.3, AvoidBadSurfaces: 0.8},
	{BicycleType: "Road", UseRoads: 0.1, UseHills: 0.3, AvoidBadSurfaces: 0.7},
	{BicycleType: "Hybrid", UseRoads: 0.2, UseHills: 0.4, AvoidBadSurfaces: 0.6},
	{BicycleType: "Cross", UseRoads: 0.3, UseHills: 0.4, AvoidBadSurfaces: 0.6},
}

// fastestRouteOptions is the four-variant table fastestRoute races.
var fastestRouteOptions = []bicycleOptions{
	{BicycleType: "Road", UseRoads: 0.5, UseHills: 0.3, AvoidBadSurfaces: 0.5},
	{BicycleType: "Cross", UseRoads: 0.6, UseHills: 0.5, AvoidBadSurfaces: 0.4},
	{BicycleType: "Road", UseRoads: 0.8, UseHills: 0.6, AvoidBadSurfaces: 0.3},
	{BicycleType: "Hybrid", UseRoads: 0.5, UseHills: 0.4, AvoidBadSurfaces: 0.5},
}

// waypointOptions is the single fixed costing used for through-waypoint
// re-routes (stage 3/4), matching the original's dedicated waypoint
// request builders.
var waypointOptions = bicycleOptions{BicycleType: "Hybrid", UseRoads: 0.2, UseHills: 0.3, AvoidBadSurfaces: 0.7}

// multiWaypointOptions is the costing used for multi-waypoint chain
// requests (stage 4).
var multiWaypointOptions = bicycleOptions{BicycleType: "Hybrid", UseRoads: 0.3, UseHills: 0.3, AvoidBadSurfaces: 0.6}

package routing

import (
	"github.com/sfmobility/routing-gateway/internal/geo"
)

// averageMicromobilitySpeedMps approximates a 15 km/h average ride.
const averageMicromobilitySpeedMps = 15 * 1000.0 / 3600.0

// mockMetersPerPoint spaces synthetic route vertices roughly 100m apart.
const mockMetersPerPoint = 100.0

// generateMockRoute synthesizes a straight-line route between origin and
// destination for development environments where no engine is reachable.
// It is only ever invoked when Config.DevMockRoutes is explicitly enabled;
// see orchestrator.go.
func generateMockRoute(req RouteRequest) RouteResponse {
	distance := geo.HaversineMeters(req.Origin, req.Destination)
	duration := int(distance / averageMicromobilitySpeedMps)

	numPoints := int(distance / mockMetersPerPoint)
	if numPoints < 10 {
		numPoints = 10
	}

	coordinates := make(geo.Polyline, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints)
		coordinates = append(coordinates, geo.Coordinate{
			Lon: req.Origin.Lon + t*(req.Destination.Lon-req.Origin.Lon),
			Lat: req.Origin.Lat + t*(req.Destination.Lat-req.Origin.Lat),
		})
	}

	maneuvers := []Maneuver{
		{
			Type:              ManeuverDepart,
			Instruction:       "Start heading toward your destination",
			VerbalInstruction: "Start heading toward your destination",
			Location:          req.Origin,
			DistanceMeters:    int(distance),
			BikeLaneStatus:    BikeLaneStatusNone,
			Alerts:            []ManeuverAlert{},
		},
		{
			Type:              ManeuverArrive,
			Instruction:       "You have arrived at your destination",
			VerbalInstruction: "You have arrived at your destination",
			Location:          req.Destination,
			BikeLaneStatus:    BikeLaneStatusNone,
			Alerts:            []ManeuverAlert{},
		},
	}

	leg := RouteLeg{
		Geometry:        coordinates,
		DistanceMeters:  int(distance),
		DurationSeconds: duration,
		Maneuvers:       maneuvers,
	}

	return RouteResponse{
		RouteID:  NewRouteID(),
		Geometry: coordinates,
		Summary: RouteSummary{
			DistanceMeters:      int(distance),
			DurationSeconds:     duration,
			ElevationGainMeters: 0,
			ElevationLossMeters: 0,
			MaxGradePercent:     0,
			BikeLanePercentage:  50,
			RiskScore:           0.3,
		},
		Legs:         []RouteLeg{leg},
		RiskAnalysis: RouteRiskAnalysis{RiskZoneIDs: []string{}},
		Warnings: []RouteWarning{
			{Code: "DEV_MOCK_ROUTE", Message: "synthetic development-mode route; engine was not consulted"},
		},
	}
}

package routing

import (
	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

// valhallaManeuverMap is the engine's integer maneuver type, 0-27, mapped
// onto this gateway's own ManeuverType vocabulary.
var valhallaManeuverMap = map[int]ManeuverType{
	0:  ManeuverDepart,
	1:  ManeuverDepart,
	2:  ManeuverStraight,
	3:  ManeuverSlightRight,
	4:  ManeuverTurnRight,
	5:  ManeuverTurnRight, // sharp right
	6:  ManeuverUTurn,
	7:  ManeuverUTurn,
	8:  ManeuverSlightLeft,
	9:  ManeuverTurnLeft,
	10: ManeuverTurnLeft, // sharp left
	11: ManeuverUTurn,
	12: ManeuverUTurn,
	13: ManeuverStraight,    // ramp straight
	14: ManeuverSlightRight, // ramp right
	15: ManeuverSlightLeft,  // ramp left
	16: ManeuverMerge,       // exit right
	17: ManeuverMerge,       // exit left
	18: ManeuverStraight,    // stay straight
	19: ManeuverSlightRight, // stay right
	20: ManeuverSlightLeft,  // stay left
	21: ManeuverMerge,
	22: ManeuverRoundabout, // enter roundabout
	23: ManeuverRoundabout, // exit roundabout
	24: ManeuverFork,       // ferry enter
	25: ManeuverFork,       // ferry exit
	26: ManeuverArrive,
	27: ManeuverArrive,
}

// parseManeuver converts one engine maneuver into a Maneuver. Exact
// geometry lookup for Location is left to the caller, who has the decoded
// shape; parseManeuver resolves it from path when provided.
func parseManeuver(m valhalla.ManeuverOutput, path geo.Polyline) Maneuver {
	maneuverType, ok := valhallaManeuverMap[m.Type]
	if !ok {
		maneuverType = ManeuverStraight
	}

	var location geo.Coordinate
	if idx := m.BeginShapeIx; idx >= 0 && idx < len(path) {
		location = path[idx]
	}

	var streetName *string
	if len(m.StreetNames) > 0 {
		streetName = &m.StreetNames[0]
	}

	return Maneuver{
		Type:              maneuverType,
		Instruction:       m.Instruction,
		VerbalInstruction: m.Instruction,
		Location:          location,
		DistanceMeters:    int(m.Length * 1000),
		StreetName:        streetName,
		BikeLaneStatus:    BikeLaneStatusNone,
		Alerts:            []ManeuverAlert{},
	}
}

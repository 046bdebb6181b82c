// Package routing implements the profile-aware multi-stage routing
// orchestrator: it turns a RouteRequest into one or more annotated
// RouteResponse values by biasing, validating, and iteratively re-routing
// candidates from the engine client against the risk-zone and bike-lane
// services.
package routing

import (
	"time"

	"github.com/google/uuid"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

// VehicleType is the rider's mode; all variants map to bicycle costing on
// the engine.
type VehicleType string

const (
	VehicleScooter VehicleType = "scooter"
	VehicleBike    VehicleType = "bike"
	VehicleEBike   VehicleType = "ebike"
)

// RouteProfile selects the orchestrator strategy.
type RouteProfile string

const (
	ProfileSafest   RouteProfile = "SAFEST"
	ProfileBalanced RouteProfile = "BALANCED"
	ProfileFastest  RouteProfile = "FASTEST"
	ProfileScenic   RouteProfile = "SCENIC"
)

// RoutePreferences carries the rider-tunable knobs that bias engine costing
// and orchestrator behavior.
type RoutePreferences struct {
	Profile         RouteProfile `json:"profile" validate:"required,oneof=SAFEST BALANCED FASTEST SCENIC"`
	AvoidHills      bool         `json:"avoid_hills"`
	MaxGradePercent float64      `json:"max_grade_percent" validate:"gte=0,lte=30"`
	PreferBikeLanes bool         `json:"prefer_bike_lanes"`
	BikeLaneWeight  float64      `json:"bike_lane_weight" validate:"gte=0,lte=1"`
}

// RouteRequest is the orchestrator's entry point payload.
type RouteRequest struct {
	Origin        geo.Coordinate   `json:"origin" validate:"required"`
	Destination   geo.Coordinate   `json:"destination" validate:"required"`
	VehicleType   VehicleType      `json:"vehicle_type" validate:"required,oneof=scooter bike ebike"`
	Preferences   RoutePreferences `json:"preferences" validate:"required"`
	AvoidRiskZones bool            `json:"avoid_risk_zones"`
	DepartureTime *time.Time       `json:"departure_time,omitempty"`
}

// ManeuverType is the gateway's own turn-by-turn vocabulary, independent of
// the engine's integer maneuver codes.
type ManeuverType string

const (
	ManeuverDepart      ManeuverType = "DEPART"
	ManeuverArrive      ManeuverType = "ARRIVE"
	ManeuverTurnLeft    ManeuverType = "TURN_LEFT"
	ManeuverTurnRight   ManeuverType = "TURN_RIGHT"
	ManeuverSlightLeft  ManeuverType = "SLIGHT_LEFT"
	ManeuverSlightRight ManeuverType = "SLIGHT_RIGHT"
	ManeuverStraight    ManeuverType = "STRAIGHT"
	ManeuverUTurn       ManeuverType = "U_TURN"
	ManeuverMerge       ManeuverType = "MERGE"
	ManeuverFork        ManeuverType = "FORK"
	ManeuverRoundabout  ManeuverType = "ROUNDABOUT"
)

// BikeLaneStatus annotates a maneuver's leaving-edge infrastructure.
type BikeLaneStatus string

const (
	BikeLaneStatusNone      BikeLaneStatus = "NONE"
	BikeLaneStatusShared    BikeLaneStatus = "SHARED"
	BikeLaneStatusDedicated BikeLaneStatus = "DEDICATED"
	BikeLaneStatusProtected BikeLaneStatus = "PROTECTED"
)

// ManeuverAlert flags a hazard a rider will encounter during a maneuver.
type ManeuverAlert struct {
	ZoneID   string `json:"zone_id"`
	Severity string `json:"severity"`
}

// Maneuver is one turn-by-turn instruction.
type Maneuver struct {
	Type              ManeuverType    `json:"type"`
	Instruction       string          `json:"instruction"`
	VerbalInstruction string          `json:"verbal_instruction"`
	Location          geo.Coordinate  `json:"location"`
	DistanceMeters    int             `json:"distance_meters"`
	StreetName        *string         `json:"street_name,omitempty"`
	BikeLaneStatus    BikeLaneStatus  `json:"bike_lane_status"`
	Alerts            []ManeuverAlert `json:"alerts"`
}

// RouteLeg is one leg of a trip (the gateway only ever issues two break
// locations, and its avoidance waypoints are `through` locations, which do
// not split legs, so a response normally carries exactly one leg).
type RouteLeg struct {
	Geometry       geo.Polyline `json:"geometry"`
	DistanceMeters int          `json:"distance_meters"`
	DurationSeconds int         `json:"duration_seconds"`
	Maneuvers      []Maneuver   `json:"maneuvers"`
}

// RouteSummary is the headline numbers for a computed route.
type RouteSummary struct {
	DistanceMeters       int     `json:"distance_meters"`
	DurationSeconds      int     `json:"duration_seconds"`
	ElevationGainMeters  int     `json:"elevation_gain_meters"`
	ElevationLossMeters  int     `json:"elevation_loss_meters"`
	MaxGradePercent      float64 `json:"max_grade_percent"`
	BikeLanePercentage   float64 `json:"bike_lane_percentage"`
	RiskScore            float64 `json:"risk_score"`
}

// RouteRiskAnalysis summarizes which hazard zones a route's geometry
// intersects.
type RouteRiskAnalysis struct {
	TotalRiskZones     int      `json:"total_risk_zones"`
	HighSeverityZones  int      `json:"high_severity_zones"`
	RiskZoneIDs        []string `json:"risk_zone_ids"`
}

// RouteWarning is a non-fatal annotation surfaced alongside a route, e.g.
// "degraded: no clean candidate found".
type RouteWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RouteResponse is the orchestrator's output for a single computed route.
type RouteResponse struct {
	RouteID      uuid.UUID         `json:"route_id"`
	Geometry     geo.Polyline      `json:"geometry"`
	Summary      RouteSummary      `json:"summary"`
	Legs         []RouteLeg        `json:"legs"`
	RiskAnalysis RouteRiskAnalysis `json:"risk_analysis"`
	Warnings     []RouteWarning    `json:"warnings"`
}

// NewRouteID generates a fresh route identifier, grounded on the teacher
// pack's use of google/uuid for generated IDs.
func NewRouteID() uuid.UUID {
	return uuid.New()
}

// RouteComparison annotates an AlternativesResponse with the indices a
// client needs to highlight the fastest/safest/recommended route.
type RouteComparison struct {
	FastestIndex     int `json:"fastest_index"`
	SafestIndex      int `json:"safest_index"`
	RecommendedIndex int `json:"recommended_index"`
}

// AlternativesResponse is the result of Alternatives: up to three routes in
// [BALANCED, SAFEST, FASTEST] order, with the lowest-duration route swapped
// into the last slot, plus routing metadata for the client.
type AlternativesResponse struct {
	Routes     []RouteResponse `json:"routes"`
	Comparison RouteComparison `json:"comparison"`
}

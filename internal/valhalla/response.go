package valhalla

// ManeuverOutput is a single turn-by-turn instruction as returned by the
// engine, prior to this gateway's own ManeuverType mapping.
type ManeuverOutput struct {
	Type         int      `json:"type"`
	Instruction  string   `json:"instruction"`
	StreetNames  []string `json:"street_names,omitempty"`
	Length       float64  `json:"length"`
	Time         float64  `json:"time"`
	BeginShapeIx int      `json:"begin_shape_index"`
	EndShapeIx   int      `json:"end_shape_index"`
}

// LegSummary carries the per-leg aggregate the engine reports.
type LegSummary struct {
	Time       float64 `json:"time"`
	Length     float64 `json:"length"`
	MinLat     float64 `json:"min_lat"`
	MinLon     float64 `json:"min_lon"`
	MaxLat     float64 `json:"max_lat"`
	MaxLon     float64 `json:"max_lon"`
	HasTimeRestrictions bool `json:"has_time_restrictions,omitempty"`
}

// LegOutput is a single leg of a trip: one polyline-6 shape, its
// maneuvers, and per-sample elevation in meters (present only when the
// request carried elevation_interval).
type LegOutput struct {
	Summary   LegSummary       `json:"summary"`
	Shape     string           `json:"shape"`
	Maneuvers []ManeuverOutput `json:"maneuvers,omitempty"`
	Elevation []float64        `json:"elevation,omitempty"`
}

// TripOutput is the engine's top-level trip result: one or more legs plus
// a trip-wide summary.
type TripOutput struct {
	Locations []RouteInputLocation `json:"locations,omitempty"`
	Legs      []LegOutput          `json:"legs"`
	Summary   LegSummary           `json:"summary"`
	StatusMessage string          `json:"status_message,omitempty"`
	Status        int             `json:"status,omitempty"`
}

// RouteOutput is the full /route response: the primary trip plus any
// requested alternates.
type RouteOutput struct {
	Trip       TripOutput   `json:"trip"`
	Alternates []TripAlternate `json:"alternates,omitempty"`
}

// TripAlternate wraps an alternate trip the way the engine nests it.
type TripAlternate struct {
	Trip TripOutput `json:"trip"`
}

// TraceAttributesInput is the input for map-matching a shape and
// retrieving per-edge attributes along it.
type TraceAttributesInput struct {
	Shape            string                        `json:"shape,omitempty"`
	EncodedPolyline  string                        `json:"encoded_polyline,omitempty"`
	Costing          *string                       `json:"costing,omitempty"`
	ShapeMatch       *string                       `json:"shape_match,omitempty"`
	CostingOptions   *RouteInputCostingOptions     `json:"costing_options,omitempty"`
	Filters          *TraceAttributesInputFilters  `json:"filters,omitempty"`
}

// TraceAttributesInputFilters selects which per-edge attributes the engine
// returns, matching Valhalla's attribute-filter convention.
type TraceAttributesInputFilters struct {
	Attributes []string `json:"attributes,omitempty"`
	Action     *string  `json:"action,omitempty"`
}

// EdgeOutput is a single matched edge's attributes.
type EdgeOutput struct {
	LengthKM   float64 `json:"length"`
	CycleLane  *string `json:"cycle_lane,omitempty"`
	Use        *string `json:"use,omitempty"`
	RoadClass  *string `json:"road_class,omitempty"`
	Surface    *string `json:"surface,omitempty"`
}

// TraceAttributesOutput is the /trace_attributes response: the map-matched
// edges along the submitted shape.
type TraceAttributesOutput struct {
	Edges []EdgeOutput `json:"edges"`
	Shape string       `json:"shape,omitempty"`
}

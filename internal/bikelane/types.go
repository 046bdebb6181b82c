// Package bikelane loads SF's bikeway network and measures how much of a
// candidate route follows real bike infrastructure, mirroring the
// facility-class filtering and point-sampling the original bike lane
// intersection service performs against SFMTA Open Data.
package bikelane

import "github.com/sfmobility/routing-gateway/internal/geo"

// FacilityClass is the SFMTA bikeway classification for a segment.
type FacilityClass string

const (
	FacilityClassI   FacilityClass = "CLASS I"   // off-street bike path
	FacilityClassII  FacilityClass = "CLASS II"  // painted on-street bike lane
	FacilityClassIII FacilityClass = "CLASS III" // sharrows / bike route signage only
	FacilityClassIV  FacilityClass = "CLASS IV"  // protected/separated bike lane
)

// realFacilityClasses are the classes counted as actual bike infrastructure
// for coverage purposes; Class III (sharrows on ordinary roads) is excluded
// deliberately.
var realFacilityClasses = map[FacilityClass]bool{
	FacilityClassI:  true,
	FacilityClassII: true,
	FacilityClassIV: true,
}

// Segment is a single bikeway geometry with its facility classification.
type Segment struct {
	Geometry geo.Polyline
	Class    FacilityClass
}

// RawSegment is what a Source fetches before facility-class filtering.
type RawSegment struct {
	Geometry geo.Polyline
	Class    string
}

// Snapshot is an immutable set of real (Class I/II/IV) bike lane segments.
type Snapshot struct {
	Segments []Segment
}

// CoverageResult reports how much of a route follows bike infrastructure.
type CoverageResult struct {
	BikeLanePercentage float64
	TotalDistanceM     float64
	BikeLaneDistanceM  float64
	SegmentsChecked    int
	SegmentsOnBikeLane int
}

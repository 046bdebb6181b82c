// Package riskzone loads SF crash/hazard risk zones, classifies them by
// severity, and provides the exclusion-polygon synthesis and route
// validation/scoring the routing orchestrator needs to avoid them.
package riskzone

import (
	"time"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

// Severity is a coarse risk bucket derived from a zone's historical
// reported-incident count.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// HazardType enumerates the hazard taxonomy recovered from the original
// persistence model; routing itself is agnostic to hazard type, but it is
// exposed on Zone so upstream consumers (e.g. a warnings UI) can render it.
type HazardType string

const (
	HazardTypeCrashHistory    HazardType = "crash_history"
	HazardTypePotholeCluster  HazardType = "pothole_cluster"
	HazardTypeConstruction    HazardType = "construction"
	HazardTypePoorLighting    HazardType = "poor_lighting"
	HazardTypeHighTraffic     HazardType = "high_traffic"
	HazardTypeSteepGrade      HazardType = "steep_grade"
	HazardTypeNarrowLane      HazardType = "narrow_lane"
	HazardTypeDooring         HazardType = "dooring"
	HazardTypeFloodProne      HazardType = "flood_prone"
	HazardTypeTheftHotspot    HazardType = "theft_hotspot"
	HazardTypeRoadDebris      HazardType = "road_debris"
	HazardTypeUnsafeCrossing  HazardType = "unsafe_crossing"
	HazardTypeLowVisibility   HazardType = "low_visibility"
	HazardTypeOther           HazardType = "other"
)

// classifyBySeverity maps a zone's reported_count to a Severity at
// ingest time. This is a DISTINCT table from filterThresholds below — the
// two encode two different policies (display classification vs. routing
// filter cutoffs) and must not be merged.
func classifyBySeverity(reportedCount int) Severity {
	switch {
	case reportedCount >= 230:
		return SeverityCritical
	case reportedCount >= 180:
		return SeverityHigh
	case reportedCount >= 160:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// filterThresholds maps a minimum Severity requested by a caller to the
// reported_count cutoff used to select zones. Intentionally distinct from
// classifyBySeverity's boundaries (140/180/230 here vs. 160/180/230 there).
var filterThresholds = map[Severity]int{
	SeverityLow:      140,
	SeverityMedium:   140,
	SeverityHigh:     180,
	SeverityCritical: 230,
}

// Zone is an active risk zone as consumed by the routing orchestrator.
type Zone struct {
	ID             string
	Center         geo.Coordinate
	RadiusMeters   float64
	ReportedCount  int
	Severity       Severity
	HazardType     HazardType
	ConfidenceScore float64
	IsPermanent    bool
	ActiveWindow   *OperationalWindow
	Source         string
	SourceID       string
	LastConfirmed  time.Time
	ExpiresAt      *time.Time
}

// OperationalWindow restricts a hazard (e.g. a nightlife-adjacent zone or a
// construction closure) to a daily time range and a subset of weekdays,
// recovered from the original persistence model's start_time/end_time/
// active_days fields. A nil window means the zone is always active.
type OperationalWindow struct {
	StartMinuteOfDay int
	EndMinuteOfDay   int
	ActiveWeekdays   map[time.Weekday]bool
}

// Active reports whether the zone's operational window covers at.
func (w *OperationalWindow) Active(at time.Time) bool {
	if w == nil {
		return true
	}
	if len(w.ActiveWeekdays) > 0 && !w.ActiveWeekdays[at.Weekday()] {
		return false
	}
	minuteOfDay := at.Hour()*60 + at.Minute()
	if w.StartMinuteOfDay <= w.EndMinuteOfDay {
		return minuteOfDay >= w.StartMinuteOfDay && minuteOfDay <= w.EndMinuteOfDay
	}
	// Window wraps past midnight.
	return minuteOfDay >= w.StartMinuteOfDay || minuteOfDay <= w.EndMinuteOfDay
}

// RawZone is what a Source fetches before classification is applied.
type RawZone struct {
	ID             string
	Lon, Lat       float64
	RadiusMeters   float64
	ReportedCount  int
	HazardType     HazardType
	ConfidenceScore float64
	IsPermanent    bool
	ActiveWindow   *OperationalWindow
	Source         string
	SourceID       string
	LastConfirmed  time.Time
	ExpiresAt      *time.Time
}

func classify(raw RawZone) Zone {
	radius := raw.RadiusMeters
	if radius <= 0 {
		radius = 100
	}
	confidence := raw.ConfidenceScore
	if confidence == 0 {
		confidence = 1.0
	}
	return Zone{
		ID:              raw.ID,
		Center:          geo.Coordinate{Lon: raw.Lon, Lat: raw.Lat},
		RadiusMeters:    radius,
		ReportedCount:   raw.ReportedCount,
		Severity:        classifyBySeverity(raw.ReportedCount),
		HazardType:      raw.HazardType,
		ConfidenceScore: confidence,
		IsPermanent:     raw.IsPermanent,
		ActiveWindow:    raw.ActiveWindow,
		Source:          raw.Source,
		SourceID:        raw.SourceID,
		LastConfirmed:   raw.LastConfirmed,
		ExpiresAt:       raw.ExpiresAt,
	}
}

// Snapshot is an immutable, point-in-time view of all active zones.
type Snapshot struct {
	Zones    []Zone
	LoadedAt time.Time
}

// ValidationResult is the outcome of checking a route against a forbidden
// zone set.
type ValidationResult struct {
	Valid          bool
	ViolationCount int
	Violations     []Violation
}

// Violation records a single zone the route passed through.
type Violation struct {
	ZoneID           string
	ReportedCount    int
	DistanceMeters   float64
	ZoneRadiusMeters float64
	AvoidanceRadiusM float64
}

// ScoreResult is the outcome of scoring a route's proximity to risk zones.
type ScoreResult struct {
	RiskScore    float64
	ZonePasses   int
	ZonesPassed  []string
}

package riskzone

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

// MaxBatchCircumferenceMeters is the combined circumference budget a single
// exclude_polygons batch may not exceed, matching the engine's own limit on
// total exclusion-polygon perimeter per request.
const MaxBatchCircumferenceMeters = 9500.0

// severityWeights scores a zone pass by severity when computing a
// continuous risk score (as opposed to the hard pass/fail of Validate).
var severityWeights = map[Severity]float64{
	SeverityLow:      0.25,
	SeverityMedium:   0.5,
	SeverityHigh:     1.0,
	SeverityCritical: 1.5,
}

// Service loads, caches, and serves the active risk-zone snapshot, and
// implements the polygon/validation/scoring operations the orchestrator
// needs to route around them.
type Service struct {
	source   Source
	log      *zap.Logger
	cacheTTL time.Duration

	snapshot atomic.Pointer[Snapshot]
	group    singleflight.Group
}

// NewService builds a Service backed by source, refreshing at most once per
// cacheTTL.
func NewService(source Source, cacheTTL time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{source: source, log: log, cacheTTL: cacheTTL}
}

// Load returns the current zone snapshot, refreshing it if stale. A cache
// miss triggers exactly one coalesced refresh even under concurrent
// callers; a failed refresh serves the previous snapshot (with a warning
// logged) unless there is no previous snapshot at all, in which case
// ErrUnavailable propagates — this gateway never substitutes an empty zone
// list for a load failure.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	if cur := s.snapshot.Load(); cur != nil && time.Since(cur.LoadedAt) < s.cacheTTL {
		return cur, nil
	}

	v, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		// Re-check: another goroutine may have refreshed while we waited
		// for the singleflight lock.
		if cur := s.snapshot.Load(); cur != nil && time.Since(cur.LoadedAt) < s.cacheTTL {
			return cur, nil
		}

		raw, ferr := s.source.FetchActiveZones(ctx)
		if ferr != nil {
			if cur := s.snapshot.Load(); cur != nil {
				s.log.Warn("serving stale risk zone snapshot after refresh failure",
					zap.Error(ferr), zap.Time("loaded_at", cur.LoadedAt))
				return cur, nil
			}
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, ferr)
		}

		zones := make([]Zone, 0, len(raw))
		for _, r := range raw {
			zones = append(zones, classify(r))
		}
		fresh := &Snapshot{Zones: zones, LoadedAt: time.Now()}
		s.snapshot.Store(fresh)
		s.log.Info("refreshed risk zone snapshot", zap.Int("zone_count", len(zones)))
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// FilterBySeverity returns the subset of zones whose reported_count meets
// or exceeds the threshold associated with minSeverity.
func FilterBySeverity(zones []Zone, minSeverity Severity) []Zone {
	threshold, ok := filterThresholds[minSeverity]
	if !ok {
		threshold = 160
	}
	out := make([]Zone, 0, len(zones))
	for _, z := range zones {
		if z.ReportedCount >= threshold {
			out = append(out, z)
		}
	}
	return out
}

// MakeCircularPolygon exposes geo.MakeCircularPolygon for callers that only
// have a Service reference, keeping the synthesis convention (8 points,
// MetersPerDegreeLat) centralized in one place.
func MakeCircularPolygon(center geo.Coordinate, radiusMeters float64) geo.Polygon {
	return geo.MakeCircularPolygon(center, radiusMeters, 8)
}

// ExclusionOptions parameterizes exclusion-polygon synthesis.
type ExclusionOptions struct {
	MinSeverity      Severity
	BufferMultiplier float64 // default 1.5 if zero
	CappedRadius     float64 // default 150m if zero
}

func (o ExclusionOptions) normalized() ExclusionOptions {
	if o.BufferMultiplier == 0 {
		o.BufferMultiplier = 1.5
	}
	if o.CappedRadius == 0 {
		o.CappedRadius = 150
	}
	return o
}

// BuildExclusionPolygons returns a single best-effort batch of exclusion
// polygons, covering as many of the highest reported_count zones as fit
// within MaxBatchCircumferenceMeters. Zones beyond the budget are dropped;
// BuildExclusionBatches should be used when full coverage matters.
func (s *Service) BuildExclusionPolygons(ctx context.Context, opts ExclusionOptions) ([]geo.Polygon, error) {
	opts = opts.normalized()
	snap, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterBySeverity(snap.Zones, opts.MinSeverity)
	sortByReportedCountDesc(filtered)

	var polygons []geo.Polygon
	var totalCirc float64
	for _, z := range filtered {
		radius := capRadius(z.RadiusMeters, opts.CappedRadius) * opts.BufferMultiplier
		circ := geo.Circumference(radius)
		if totalCirc+circ > MaxBatchCircumferenceMeters {
			break
		}
		polygons = append(polygons, geo.MakeCircularPolygon(z.Center, radius, 8))
		totalCirc += circ
	}
	return polygons, nil
}

// BuildExclusionBatches splits exclusion polygons for all zones at or above
// minSeverity into consecutive batches, each within
// MaxBatchCircumferenceMeters, ordered by descending reported_count so the
// most reported zones land in the earliest (and most frequently tried)
// batches.
func (s *Service) BuildExclusionBatches(ctx context.Context, opts ExclusionOptions) ([][]geo.Polygon, error) {
	opts = opts.normalized()
	snap, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterBySeverity(snap.Zones, opts.MinSeverity)
	sortByReportedCountDesc(filtered)

	var batches [][]geo.Polygon
	var current []geo.Polygon
	var currentCirc float64

	for _, z := range filtered {
		radius := capRadius(z.RadiusMeters, opts.CappedRadius) * opts.BufferMultiplier
		circ := geo.Circumference(radius)
		if currentCirc+circ > MaxBatchCircumferenceMeters {
			if len(current) > 0 {
				batches = append(batches, current)
			}
			current = nil
			currentCirc = 0
		}
		current = append(current, geo.MakeCircularPolygon(z.Center, radius, 8))
		currentCirc += circ
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

func capRadius(radius, capMeters float64) float64 {
	if radius > capMeters {
		return capMeters
	}
	return radius
}

func sortByReportedCountDesc(zones []Zone) {
	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].ReportedCount > zones[j].ReportedCount
	})
}

// Validate checks whether route passes within radiusFactor*RadiusMeters of
// any zone at or above minSeverity. A route with zero such passes is Valid.
func Validate(route geo.Polyline, zones []Zone, minSeverity Severity, radiusFactor float64) ValidationResult {
	filtered := FilterBySeverity(zones, minSeverity)
	var violations []Violation

	for _, z := range filtered {
		avoidanceRadius := z.RadiusMeters * radiusFactor
		for _, c := range route {
			d := geo.HaversineMeters(c, z.Center)
			if d < avoidanceRadius {
				violations = append(violations, Violation{
					ZoneID:           z.ID,
					ReportedCount:    z.ReportedCount,
					DistanceMeters:   d,
					ZoneRadiusMeters: z.RadiusMeters,
					AvoidanceRadiusM: avoidanceRadius,
				})
				break
			}
		}
	}

	return ValidationResult{
		Valid:          len(violations) == 0,
		ViolationCount: len(violations),
		Violations:     violations,
	}
}

// Score computes a continuous 0..1 risk score for route against the given
// zones (unfiltered by severity — callers pre-filter when they want a
// severity-scoped score, mirroring the original's
// calculate_route_risk_score vs. calculate_route_risk_score_filtered
// split).
func Score(route geo.Polyline, zones []Zone, radiusFactor float64) ScoreResult {
	if len(route) == 0 || len(zones) == 0 {
		return ScoreResult{}
	}

	var zonePasses int
	var zonesPassed []string
	var totalRiskPoints float64

	for _, z := range zones {
		zoneRadius := z.RadiusMeters * radiusFactor
		for _, c := range route {
			d := geo.HaversineMeters(c, z.Center)
			if d < zoneRadius {
				zonePasses++
				zonesPassed = append(zonesPassed, z.ID)
				closeness := 1.0
				if zoneRadius > 0 {
					closeness = 1 - (d / zoneRadius)
				}
				weight, ok := severityWeights[z.Severity]
				if !ok {
					weight = 0.5
				}
				totalRiskPoints += closeness * weight
				break
			}
		}
	}

	riskScore := 0.0
	if len(zones) > 0 {
		riskScore = totalRiskPoints / (float64(len(zones)) * 0.3)
		if riskScore > 1.0 {
			riskScore = 1.0
		}
	}

	return ScoreResult{RiskScore: riskScore, ZonePasses: zonePasses, ZonesPassed: zonesPassed}
}

// ScoreFiltered scores route considering only zones at or above
// minSeverity.
func ScoreFiltered(route geo.Polyline, zones []Zone, minSeverity Severity, radiusFactor float64) ScoreResult {
	return Score(route, FilterBySeverity(zones, minSeverity), radiusFactor)
}

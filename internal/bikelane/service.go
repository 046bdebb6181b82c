package bikelane

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

// DefaultMaxDistanceMeters is the distance from a sampled route point to a
// bike lane geometry within which the point counts as "on" a bike lane. It
// is deliberately generous (25m) to absorb street width and coordinate
// discrepancies between the routing engine's shape and the bikeway dataset.
const DefaultMaxDistanceMeters = 25.0

// sampleFractions are the within-segment fractions sampled per route
// segment; a segment counts as on-network when at least 2 of the 4 samples
// fall within the distance threshold of a real bike lane.
var sampleFractions = []float64{0, 0.33, 0.67, 1.0}

// onNetworkSampleThreshold is the minimum number of the 4 samples that must
// be near a bike lane for the whole segment to count as on-network.
const onNetworkSampleThreshold = 2

// Service loads and caches the SF bikeway network and measures route
// coverage against it.
type Service struct {
	source   Source
	log      *zap.Logger
	cacheTTL time.Duration

	snapshot atomic.Pointer[Snapshot]
	loadedAt atomic.Int64 // unix nanos
	group    singleflight.Group
}

// NewService builds a Service backed by source.
func NewService(source Source, cacheTTL time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{source: source, log: log, cacheTTL: cacheTTL}
}

// Load refreshes the bikeway snapshot if stale, serving the cached snapshot
// on refresh failure (logged) and an empty snapshot if no cache exists at
// all — unlike risk zones, bike-lane coverage is advisory, not
// safety-critical, so a cold-start failure degrades to "can't tell" rather
// than failing the whole route calculation (see the trace_attributes
// fallback in the orchestrator for what fills the gap).
func (s *Service) Load(ctx context.Context) error {
	if cur := s.snapshot.Load(); cur != nil && time.Since(time.Unix(0, s.loadedAt.Load())) < s.cacheTTL {
		return nil
	}

	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		if cur := s.snapshot.Load(); cur != nil && time.Since(time.Unix(0, s.loadedAt.Load())) < s.cacheTTL {
			return cur, nil
		}

		raw, ferr := s.source.FetchSegments(ctx)
		if ferr != nil {
			if cur := s.snapshot.Load(); cur != nil {
				s.log.Warn("serving stale bike lane snapshot after refresh failure", zap.Error(ferr))
				return cur, nil
			}
			s.log.Error("bike lane network unavailable and no cache to fall back on", zap.Error(ferr))
			s.snapshot.Store(&Snapshot{})
			s.loadedAt.Store(time.Now().UnixNano())
			return &Snapshot{}, nil
		}

		segments := make([]Segment, 0, len(raw))
		for _, r := range raw {
			if !realFacilityClasses[FacilityClass(r.Class)] {
				continue
			}
			segments = append(segments, Segment{Geometry: r.Geometry, Class: FacilityClass(r.Class)})
		}
		fresh := &Snapshot{Segments: segments}
		s.snapshot.Store(fresh)
		s.loadedAt.Store(time.Now().UnixNano())
		s.log.Info("refreshed bike lane snapshot", zap.Int("segment_count", len(segments)))
		return fresh, nil
	})
	return err
}

// Coverage measures what fraction of route follows real bike
// infrastructure, sampling 4 points per route segment and requiring at
// least 2 to be within DefaultMaxDistanceMeters of some bikeway segment for
// the whole route segment to count as on-network.
func (s *Service) Coverage(ctx context.Context, route geo.Polyline) (CoverageResult, error) {
	if len(route) < 2 {
		return CoverageResult{}, nil
	}
	if err := s.Load(ctx); err != nil {
		return CoverageResult{}, fmt.Errorf("bikelane: loading network: %w", err)
	}

	snap := s.snapshot.Load()
	if snap == nil || len(snap.Segments) == 0 {
		return CoverageResult{}, nil
	}

	maxDistanceDegrees := DefaultMaxDistanceMeters / geo.MetersPerDegreeFlat

	var totalDistance, bikeLaneDistance float64
	var segmentsChecked, segmentsOnBikeLane int

	for i := 0; i < len(route)-1; i++ {
		a := route[i]
		b := route[i+1]
		segLen := geo.HaversineMeters(a, b)
		totalDistance += segLen
		segmentsChecked++

		onCount := 0
		for _, frac := range sampleFractions {
			p := geo.Coordinate{
				Lon: a.Lon + (b.Lon-a.Lon)*frac,
				Lat: a.Lat + (b.Lat-a.Lat)*frac,
			}
			if nearestDegrees(p, snap.Segments) <= maxDistanceDegrees {
				onCount++
			}
		}

		if onCount >= onNetworkSampleThreshold {
			bikeLaneDistance += segLen
			segmentsOnBikeLane++
		}
	}

	if totalDistance == 0 {
		return CoverageResult{}, nil
	}

	pct := (bikeLaneDistance / totalDistance) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	return CoverageResult{
		BikeLanePercentage: roundTo1(pct),
		TotalDistanceM:     totalDistance,
		BikeLaneDistanceM:  bikeLaneDistance,
		SegmentsChecked:    segmentsChecked,
		SegmentsOnBikeLane: segmentsOnBikeLane,
	}, nil
}

// nearestDegrees returns the minimum degree-space distance from p to any
// segment in segments, measured as the distance from p to the closest point
// on each segment's polyline (projection onto each line piece, clamped to
// its endpoints).
func nearestDegrees(p geo.Coordinate, segments []Segment) float64 {
	best := pointToSegmentDegrees(p, segments[0].Geometry)
	for _, seg := range segments[1:] {
		if d := pointToSegmentDegrees(p, seg.Geometry); d < best {
			best = d
		}
	}
	return best
}

func pointToSegmentDegrees(p geo.Coordinate, line geo.Polyline) float64 {
	if len(line) == 0 {
		return 1 << 30
	}
	best := geo.SimpleDistance(p, line[0])
	for i := 0; i < len(line)-1; i++ {
		d := distanceToSegmentDegrees(p, line[i], line[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

// distanceToSegmentDegrees is the perpendicular (or nearest-endpoint)
// distance from p to the segment [a,b], in raw degree space.
func distanceToSegmentDegrees(p, a, b geo.Coordinate) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return geo.SimpleDistance(p, a)
	}
	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	proj := geo.Coordinate{Lon: a.Lon + t*dx, Lat: a.Lat + t*dy}
	return geo.SimpleDistance(p, proj)
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

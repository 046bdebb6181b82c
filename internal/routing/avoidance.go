package routing

import (
	"context"
	"sort"

	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

// maxWaypointIterations bounds stage 3's iterative waypoint nudging.
const maxWaypointIterations = 5

// focusedRadiusMultiplier enlarges a violated zone's radius when stage 2
// builds a re-exclusion batch scoped to just the zones that keep showing
// up in fallback candidates.
const focusedRadiusMultiplier = 3.0

// focusedRadiusCapMeters bounds the enlarged radius stage 2/3/4 use so a
// single hot zone can't blow the exclusion circumference budget alone.
const focusedRadiusCapMeters = 500.0

// maxBroadWaypointCandidates caps how many single- and multi-waypoint
// requests stage 4 submits in one pass.
const maxBroadWaypointCandidates = 16

// fallback records a candidate that failed validation, kept around so a
// later stage can degrade to "least bad" if nothing clean ever turns up.
type fallback struct {
	cand       candidate
	violations riskzone.ValidationResult
	score      riskzone.ScoreResult
}

func scoreFallback(cand candidate, zones []riskzone.Zone, minSeverity riskzone.Severity, factor float64) fallback {
	return fallback{
		cand:       cand,
		violations: riskzone.Validate(cand.path, zones, minSeverity, factor),
		score:      riskzone.ScoreFiltered(cand.path, zones, minSeverity, factor),
	}
}

// betterFallback reports whether a improves on b: fewer violations first,
// then lower risk score, then shorter distance.
func betterFallback(a, b fallback) bool {
	if a.violations.ViolationCount != b.violations.ViolationCount {
		return a.violations.ViolationCount < b.violations.ViolationCount
	}
	if a.score.RiskScore != b.score.RiskScore {
		return a.score.RiskScore < b.score.RiskScore
	}
	return a.cand.distanceM < b.cand.distanceM
}

// evaluate splits cands into the valid ones (sorted shortest-first) and a
// fallback list (every candidate, scored) so callers can both grab a clean
// winner and keep degrading gracefully if there isn't one.
func evaluate(cands []candidate, zones []riskzone.Zone, minSeverity riskzone.Severity, factor float64) (valid []candidate, fallbacks []fallback) {
	for _, c := range cands {
		if len(c.path) == 0 {
			continue
		}
		fb := scoreFallback(c, zones, minSeverity, factor)
		fallbacks = append(fallbacks, fb)
		if fb.violations.Valid {
			valid = append(valid, c)
		}
	}
	sortCandidatesByDistance(valid)
	return valid, fallbacks
}

func bestFallback(fallbacks []fallback) (fallback, bool) {
	if len(fallbacks) == 0 {
		return fallback{}, false
	}
	best := fallbacks[0]
	for _, f := range fallbacks[1:] {
		if betterFallback(f, best) {
			best = f
		}
	}
	return best, true
}

// mostViolatedZoneIDs returns the zone IDs appearing most frequently across
// every fallback candidate's violations, most frequent first.
func mostViolatedZoneIDs(fallbacks []fallback) []string {
	counts := map[string]int{}
	var order []string
	for _, f := range fallbacks {
		for _, v := range f.violations.Violations {
			if counts[v.ZoneID] == 0 {
				order = append(order, v.ZoneID)
			}
			counts[v.ZoneID]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	return order
}

// focusedExclusionPolygons builds exclusion rings for exactly the zones
// named in ids, at an enlarged radius (avoidance_factor * 3.0, per the
// original's focused re-exclusion), stopping if the circumference budget
// would be exceeded.
func focusedExclusionPolygons(zones []riskzone.Zone, ids map[string]bool, factor float64) []geo.Polygon {
	var polygons []geo.Polygon
	var circ float64
	for _, z := range zones {
		if !ids[z.ID] {
			continue
		}
		radius := z.RadiusMeters * factor * focusedRadiusMultiplier
		if radius > focusedRadiusCapMeters {
			radius = focusedRadiusCapMeters
		}
		c := geo.Circumference(radius)
		if circ+c > riskzone.MaxBatchCircumferenceMeters {
			break
		}
		polygons = append(polygons, geo.MakeCircularPolygon(z.Center, radius, 8))
		circ += c
	}
	return polygons
}

func zoneByID(zones []riskzone.Zone, id string) (riskzone.Zone, bool) {
	for _, z := range zones {
		if z.ID == id {
			return z, true
		}
	}
	return riskzone.Zone{}, false
}

// stage1Inputs builds the fixed costing-variant table plus one
// alternates=2 request tuned to the rider's own preferences (so avoid_hills
// and prefer_bike_lanes still matter even though the fixed table explores a
// predetermined bias space), and, when the caller says this batch covers
// every relevant zone, one quasi-shortest variant on top.
func stage1Inputs(req RouteRequest, options []bicycleOptions, exclude []geo.Polygon, includeShortest bool) []*valhalla.RouteInput {
	inputs := make([]*valhalla.RouteInput, 0, len(options)+2)
	for _, opt := range options {
		inputs = append(inputs, baseRequest(req, opt, exclude))
	}
	tuned := buildCostingOptions(req.Preferences, req.VehicleType)
	inputs = append(inputs, withAlternates(baseRequest(req, tuned, exclude), 2))
	if includeShortest {
		inputs = append(inputs, baseRequest(req, shortestVariant, exclude))
	}
	return inputs
}

// avoidanceRoute implements the five-stage avoidance pipeline: batched
// hard exclusion, focused re-exclusion, iterative waypoint avoidance,
// broad waypoint avoidance, and a final degrade-or-fail stage.
func (o *Orchestrator) avoidanceRoute(ctx context.Context, req RouteRequest, minSeverity riskzone.Severity, options []bicycleOptions) (candidate, []RouteWarning, error) {
	factor := o.avoidanceFactor(minSeverity)

	snap, err := o.riskZones.Load(ctx)
	if err != nil {
		return candidate{}, nil, err
	}

	batches, err := o.riskZones.BuildExclusionBatches(ctx, riskzone.ExclusionOptions{MinSeverity: minSeverity})
	if err != nil {
		return candidate{}, nil, err
	}

	if len(batches) == 0 {
		// No zone meets minSeverity: nothing to avoid, route straight away.
		inputs := stage1Inputs(req, options, nil, true)
		cands, ferr := o.fanOutCandidates(ctx, inputs)
		if ferr != nil {
			return candidate{}, nil, ferr
		}
		if len(cands) == 0 {
			return candidate{}, nil, ErrRouteNotFound
		}
		return bestCandidate(cands), nil, nil
	}

	var allFallbacks []fallback
	var engineErr error

	// Stage 1: batched hard exclusion.
	for _, batch := range batches {
		inputs := stage1Inputs(req, options, batch, len(batches) == 1)
		cands, ferr := o.fanOutCandidates(ctx, inputs)
		if ferr != nil {
			engineErr = ferr
			continue
		}
		valid, fallbacks := evaluate(cands, snap.Zones, minSeverity, factor)
		allFallbacks = append(allFallbacks, fallbacks...)
		if len(valid) > 0 {
			return bestCandidate(valid), nil, nil
		}
	}

	// Stage 2: focused re-exclusion on whichever zones keep getting hit.
	hot := mostViolatedZoneIDs(allFallbacks)
	if len(hot) > 3 {
		hot = hot[:3]
	}
	hotSet := toSet(hot)
	var focused []geo.Polygon
	if len(hotSet) > 0 {
		focused = focusedExclusionPolygons(snap.Zones, hotSet, factor)
		inputs := stage1Inputs(req, options, focused, true)
		cands, ferr := o.fanOutCandidates(ctx, inputs)
		if ferr != nil {
			engineErr = ferr
		} else {
			valid, fallbacks := evaluate(cands, snap.Zones, minSeverity, factor)
			allFallbacks = append(allFallbacks, fallbacks...)
			if len(valid) > 0 {
				return bestCandidate(valid), []RouteWarning{{
					Code:    "FOCUSED_REROUTE",
					Message: "route avoids hazards via a focused re-exclusion around the most frequently violated zones",
				}}, nil
			}
		}
	}

	if len(allFallbacks) == 0 && engineErr != nil {
		return candidate{}, nil, engineErr
	}

	best, ok := bestFallback(allFallbacks)
	if !ok {
		return candidate{}, nil, ErrRouteNotFound
	}

	// Stage 3: iterative waypoint avoidance, nudging around whichever
	// zones the current best candidate still violates.
	for iteration := 0; iteration < maxWaypointIterations; iteration++ {
		if best.violations.Valid {
			break
		}
		improved, ok := o.tryWaypointNudge(ctx, req, best, snap.Zones, minSeverity, focused, iteration)
		if !ok {
			break
		}
		if improved.violations.Valid {
			return improved.cand, []RouteWarning{{
				Code:    "WAYPOINT_AVOIDANCE",
				Message: "route was adjusted with an intermediate waypoint to avoid hazards",
			}}, nil
		}
		if betterFallback(improved, best) {
			best = improved
			continue
		}
		break
	}

	// Stage 4: broad waypoint avoidance across the whole path.
	if result, warnings, ok := o.broadWaypointAvoidance(ctx, req, best, snap.Zones, minSeverity, focused); ok {
		return result, warnings, nil
	}

	// Stage 5: degrade or fail.
	if minSeverity == riskzone.SeverityHigh {
		// BALANCED: accept a single remaining low-severity violation.
		loSev := riskzone.Validate(best.cand.path, snap.Zones, riskzone.SeverityLow, o.avoidanceFactor(riskzone.SeverityLow))
		if loSev.ViolationCount <= 1 {
			return best.cand, []RouteWarning{{
				Code:    "DEGRADED_ROUTE",
				Message: "route could not fully avoid hazards; at most one low-severity zone remains on the path",
			}}, nil
		}
		return candidate{}, nil, ErrRouteNotFound
	}

	// SAFEST/SCENIC: always surface the least-bad candidate found.
	return best.cand, []RouteWarning{{
		Code:    "DEGRADED_ROUTE",
		Message: "no hazard-free route was found; returning the candidate with the fewest violations",
	}}, nil
}

// tryWaypointNudge attempts one stage-3 iteration: for each zone the
// current best candidate still violates, sidestep it with a waypoint and
// keep whichever resulting candidate scores best.
func (o *Orchestrator) tryWaypointNudge(ctx context.Context, req RouteRequest, current fallback, zones []riskzone.Zone, minSeverity riskzone.Severity, exclude []geo.Polygon, iteration int) (fallback, bool) {
	factor := o.avoidanceFactor(minSeverity)
	var inputs []*valhalla.RouteInput
	for _, v := range current.violations.Violations {
		zone, ok := zoneByID(zones, v.ZoneID)
		if !ok {
			continue
		}
		idx := geo.NearestIndex(current.cand.path, zone.Center)
		dir := geo.LocalDirection(current.cand.path, idx)
		perp1, perp2 := geo.PerpendicularUnit(geo.Coordinate{}, dir)
		offsetDegrees := zone.RadiusMeters * factor * (2.5 + float64(iteration)) / geo.MetersPerDegreeLat
		wp1 := geo.Offset(zone.Center, perp1, offsetDegrees)
		wp2 := geo.Offset(zone.Center, perp2, offsetDegrees)
		waypoint := betterWaypoint(wp1, wp2, zones)
		inputs = append(inputs, waypointRequest(req, waypoint, exclude))
	}
	if len(inputs) == 0 {
		return fallback{}, false
	}

	cands, ferr := o.fanOutCandidates(ctx, inputs)
	if ferr != nil {
		return fallback{}, false
	}
	_, fallbacks := evaluate(cands, zones, minSeverity, factor)
	best, ok := bestFallback(fallbacks)
	return best, ok
}

// broadWaypointAvoidance is stage 4: identify the zone cluster that lies
// roughly on the direct path and try single- and multi-waypoint detours
// around it.
func (o *Orchestrator) broadWaypointAvoidance(ctx context.Context, req RouteRequest, current fallback, zones []riskzone.Zone, minSeverity riskzone.Severity, exclude []geo.Polygon) (candidate, []RouteWarning, bool) {
	factor := o.avoidanceFactor(minSeverity)
	relevant := riskzone.FilterBySeverity(zones, minSeverity)
	cluster := findZonesOnPath(req.Origin, req.Destination, relevant)
	if len(cluster) == 0 {
		return candidate{}, nil, false
	}

	var sumLat, sumLon float64
	for _, z := range cluster {
		sumLat += z.Center.Lat
		sumLon += z.Center.Lon
	}
	clusterCenter := geo.Coordinate{Lat: sumLat / float64(len(cluster)), Lon: sumLon / float64(len(cluster))}

	var inputs []*valhalla.RouteInput
	for _, wp := range generateAvoidanceWaypoints(req.Origin, req.Destination, clusterCenter, zones) {
		inputs = append(inputs, waypointRequest(req, wp, exclude))
	}

	perp1, perp2 := perpendicularAxis(req.Origin, req.Destination)
	for attempt := 1; attempt <= 4 && len(inputs) < maxBroadWaypointCandidates; attempt++ {
		multiplier := 2.0 + float64(attempt)*1.5
		waypoints := make([]geo.Coordinate, 0, len(cluster))
		for _, z := range cluster {
			offsetDegrees := z.RadiusMeters * factor * multiplier / geo.MetersPerDegreeLat
			wp1 := geo.Offset(z.Center, perp1, offsetDegrees)
			wp2 := geo.Offset(z.Center, perp2, offsetDegrees)
			waypoints = append(waypoints, betterWaypoint(wp1, wp2, zones))
		}
		inputs = append(inputs, multiWaypointRequest(req, waypoints, exclude))
	}
	if len(inputs) > maxBroadWaypointCandidates {
		inputs = inputs[:maxBroadWaypointCandidates]
	}

	cands, ferr := o.fanOutCandidates(ctx, inputs)
	if ferr != nil {
		return candidate{}, nil, false
	}
	valid, fallbacks := evaluate(cands, zones, minSeverity, factor)
	if len(valid) > 0 {
		return bestCandidate(valid), []RouteWarning{{
			Code:    "WAYPOINT_AVOIDANCE",
			Message: "route was adjusted with intermediate waypoints to avoid a cluster of hazards",
		}}, true
	}

	if minSeverity != riskzone.SeverityHigh {
		// SAFEST/SCENIC never settles here; stage 5 picks the least-bad.
		return candidate{}, nil, false
	}
	best, ok := bestFallback(fallbacks)
	if !ok || best.violations.ViolationCount > 1 {
		return candidate{}, nil, false
	}
	return best.cand, []RouteWarning{{
		Code:    "DEGRADED_ROUTE",
		Message: "route could not fully avoid a hazard cluster; at most one violation remains",
	}}, true
}

func bestCandidate(cands []candidate) candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.distanceM < best.distanceM {
			best = c
		}
	}
	return best
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

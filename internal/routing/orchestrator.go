package routing

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

// candidateConcurrency bounds how many engine requests a single pipeline
// stage issues at once.
const candidateConcurrency = 6

// defaultAvoidanceFactorSafest and defaultAvoidanceFactorBalanced back
// NewOrchestrator when the caller passes a zero value, matching
// config.Settings' own defaults.
const (
	defaultAvoidanceFactorSafest   = 0.25
	defaultAvoidanceFactorBalanced = 0.2
)

// Orchestrator turns a RouteRequest into one or more RouteResponse values,
// biasing and iteratively re-routing engine candidates against the
// risk-zone and bike-lane services.
type Orchestrator struct {
	engine    *valhalla.Client
	riskZones *riskzone.Service
	bikeLanes *bikelane.Service
	log       *zap.Logger

	// avoidanceFactorSafest and avoidanceFactorBalanced are the radius
	// multipliers validation and scoring apply to a zone's reported
	// radius: Safest backs every LOW-severity check (SAFEST, SCENIC,
	// bike-lane-preferred, and the no-avoidance default), Balanced backs
	// HIGH-severity checks made on behalf of a BALANCED route.
	avoidanceFactorSafest   float64
	avoidanceFactorBalanced float64

	// devMockRoutes, when true, serves generateMockRoute instead of
	// reaching the engine. Only ever enabled in development.
	devMockRoutes bool
}

// NewOrchestrator wires the three backing services into an Orchestrator.
// A zero avoidanceFactorSafest or avoidanceFactorBalanced falls back to
// this gateway's defaults (0.25 / 0.2).
func NewOrchestrator(engine *valhalla.Client, riskZones *riskzone.Service, bikeLanes *bikelane.Service, log *zap.Logger, devMockRoutes bool, avoidanceFactorSafest, avoidanceFactorBalanced float64) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	if avoidanceFactorSafest == 0 {
		avoidanceFactorSafest = defaultAvoidanceFactorSafest
	}
	if avoidanceFactorBalanced == 0 {
		avoidanceFactorBalanced = defaultAvoidanceFactorBalanced
	}
	return &Orchestrator{
		engine:                  engine,
		riskZones:               riskZones,
		bikeLanes:               bikeLanes,
		log:                     log,
		avoidanceFactorSafest:   avoidanceFactorSafest,
		avoidanceFactorBalanced: avoidanceFactorBalanced,
		devMockRoutes:           devMockRoutes,
	}
}

// avoidanceFactor returns the radius multiplier validation and scoring use
// when checking a candidate against zones at or above minSeverity: 0.25 for
// LOW (SAFEST/SCENIC and the no-avoidance default), 0.2 for HIGH
// (BALANCED) — mirroring the original's per-profile avoidance_factor.
func (o *Orchestrator) avoidanceFactor(minSeverity riskzone.Severity) float64 {
	if minSeverity == riskzone.SeverityHigh {
		return o.avoidanceFactorBalanced
	}
	return o.avoidanceFactorSafest
}

// Calculate dispatches req to the strategy its profile selects and
// assembles the full annotated response.
func (o *Orchestrator) Calculate(ctx context.Context, req RouteRequest) (RouteResponse, error) {
	if o.devMockRoutes {
		return generateMockRoute(req), nil
	}

	cand, warnings, err := o.route(ctx, req)
	if err != nil {
		return RouteResponse{}, o.classifyError(err)
	}

	resp, err := o.assembleResponse(ctx, cand, warnings)
	if err != nil {
		return RouteResponse{}, o.classifyError(err)
	}
	return resp, nil
}

// route dispatches to the per-profile strategy, implementing the profile
// table: SAFEST+prefer_bike_lanes routes around bike lane coverage first,
// plain SAFEST/SCENIC avoid every LOW-or-worse zone, BALANCED only avoids
// HIGH-or-worse, and FASTEST ignores hazards entirely.
func (o *Orchestrator) route(ctx context.Context, req RouteRequest) (candidate, []RouteWarning, error) {
	// minSeverity tracks which avoidance floor (if any) produced cand, so
	// assembleResponse can score it against the same radius factor the
	// pipeline validated it against. Profiles that never avoid zones
	// (FASTEST, opted-out) keep the initial SeverityLow, so they are scored
	// with the LOW factor — the original's scoring default.
	minSeverity := riskzone.SeverityLow
	var (
		cand     candidate
		warnings []RouteWarning
		err      error
	)
	switch {
	case req.Preferences.Profile == ProfileFastest:
		cand, warnings, err = o.fastestRoute(ctx, req)
	case !req.AvoidRiskZones:
		cand, warnings, err = o.plainRoute(ctx, req)
	case req.Preferences.Profile == ProfileSafest && req.Preferences.PreferBikeLanes:
		cand, warnings, err = o.bikeLanePreferred(ctx, req)
	case req.Preferences.Profile == ProfileSafest:
		cand, warnings, err = o.avoidanceRoute(ctx, req, riskzone.SeverityLow, safestRouteOptions)
	case req.Preferences.Profile == ProfileScenic:
		cand, warnings, err = o.avoidanceRoute(ctx, req, riskzone.SeverityLow, scenicRouteOptions)
	default: // ProfileBalanced
		minSeverity = riskzone.SeverityHigh
		cand, warnings, err = o.avoidanceRoute(ctx, req, riskzone.SeverityHigh, safestRouteOptions)
	}
	cand.minSeverity = minSeverity
	return cand, warnings, err
}

// Alternatives returns up to three routes in [BALANCED, SAFEST, FASTEST]
// order, then swaps whichever slot has the lowest duration into the
// FASTEST position so the label always matches reality.
func (o *Orchestrator) Alternatives(ctx context.Context, req RouteRequest) (AlternativesResponse, error) {
	if o.devMockRoutes {
		balanced := req
		balanced.Preferences.Profile = ProfileBalanced
		safest := req
		safest.Preferences.Profile = ProfileSafest
		fastest := req
		fastest.Preferences.Profile = ProfileFastest
		routes := []RouteResponse{generateMockRoute(balanced), generateMockRoute(safest), generateMockRoute(fastest)}
		return AlternativesResponse{Routes: routes, Comparison: RouteComparison{FastestIndex: 2, SafestIndex: 1, RecommendedIndex: 0}}, nil
	}

	profiles := []RouteProfile{ProfileBalanced, ProfileSafest, ProfileFastest}
	type profiledRoute struct {
		profile RouteProfile
		route   RouteResponse
	}
	built := make([]profiledRoute, 0, len(profiles))
	for _, profile := range profiles {
		sub := req
		sub.Preferences.Profile = profile
		resp, err := o.Calculate(ctx, sub)
		if err != nil {
			if errKind, ok := AsError(err); ok && errKind.Kind == KindRoutingError {
				continue // this profile found nothing; the others may still succeed
			}
			return AlternativesResponse{}, err
		}
		built = append(built, profiledRoute{profile: profile, route: resp})
	}
	if len(built) == 0 {
		return AlternativesResponse{}, ErrRouteNotFound
	}

	fastestIdx := 0
	for i, b := range built {
		if b.route.Summary.DurationSeconds < built[fastestIdx].route.Summary.DurationSeconds {
			fastestIdx = i
		}
	}
	lastIdx := len(built) - 1
	built[fastestIdx], built[lastIdx] = built[lastIdx], built[fastestIdx]

	// SafestIndex is found by profile identity, not position: the swap
	// above can move the SAFEST route's data into any slot.
	comparison := RouteComparison{FastestIndex: lastIdx, SafestIndex: 0, RecommendedIndex: 0}
	for i, b := range built {
		if b.profile == ProfileSafest {
			comparison.SafestIndex = i
			break
		}
	}

	routes := make([]RouteResponse, len(built))
	for i, b := range built {
		routes[i] = b.route
	}
	return AlternativesResponse{Routes: routes, Comparison: comparison}, nil
}

func (o *Orchestrator) classifyError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, riskzone.ErrUnavailable):
		return newError(KindRiskZoneUnavailable, "risk zone data is unavailable", err)
	case errors.Is(err, valhalla.ErrEngineUnavailable):
		return newError(KindEngineUnavailable, "the routing engine is unavailable", err)
	case errors.Is(err, valhalla.ErrEngineProtocolError):
		return newError(KindEngineUnavailable, "the routing engine returned an unexpected response", err)
	default:
		return newError(KindInternal, "route calculation failed", err)
	}
}

// candidate is a decoded, not-yet-fully-assembled route: enough to
// validate and score against risk zones and to compare against its peers.
// Full response assembly (bike-lane coverage, elevation stats, maneuvers,
// risk analysis) is deferred to the single candidate that wins its stage.
type candidate struct {
	trip      valhalla.TripOutput
	path      geo.Polyline
	distanceM float64
	durationS float64

	// minSeverity is the avoidance floor route() validated this candidate
	// against, used by assembleResponse to pick the matching radius
	// factor. Zero value (empty Severity) behaves like SeverityLow.
	minSeverity riskzone.Severity
}

func decodeCandidate(trip valhalla.TripOutput) candidate {
	var path geo.Polyline
	var distanceM, durationS float64
	for _, leg := range trip.Legs {
		path = append(path, geo.DecodePolyline(leg.Shape)...)
		distanceM += leg.Summary.Length * 1000
		durationS += leg.Summary.Time
	}
	if trip.Summary.Time > 0 {
		durationS = trip.Summary.Time
	}
	return candidate{trip: trip, path: path, distanceM: distanceM, durationS: durationS}
}

// tripsFromOutput flattens an engine response into its primary trip plus
// every alternate, each independently decoded.
func tripsFromOutput(out *valhalla.RouteOutput) []candidate {
	if out == nil {
		return nil
	}
	cands := make([]candidate, 0, 1+len(out.Alternates))
	cands = append(cands, decodeCandidate(out.Trip))
	for _, alt := range out.Alternates {
		cands = append(cands, decodeCandidate(alt.Trip))
	}
	return cands
}

// fanOutCandidates submits every input concurrently (bounded by
// candidateConcurrency) and returns every trip/alternate decoded from
// every response that succeeded; individual failures are logged and
// dropped rather than failing the whole batch, mirroring how the original
// pipeline tolerates a few bad engine variants as long as others land. If
// every single input failed, the last error is returned alongside the
// (necessarily empty) candidate list so callers can tell "the engine is
// down" apart from "nothing avoided the hazards".
func (o *Orchestrator) fanOutCandidates(ctx context.Context, inputs []*valhalla.RouteInput) ([]candidate, error) {
	results := make([][]candidate, len(inputs))
	errs := make([]error, len(inputs))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(candidateConcurrency)

	for i, input := range inputs {
		i, input := i, input
		group.Go(func() error {
			out, err := o.engine.Route(gctx, input)
			if err != nil {
				o.log.Debug("candidate route request failed", zap.Int("variant", i), zap.Error(err))
				errs[i] = err
				return nil
			}
			results[i] = tripsFromOutput(out)
			return nil
		})
	}
	_ = group.Wait()

	var all []candidate
	var lastErr error
	for i, r := range results {
		all = append(all, r...)
		if errs[i] != nil {
			lastErr = errs[i]
		}
	}
	if len(all) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return all, nil
}

// assembleResponse is the single place full response construction happens:
// elevation stats, bike-lane coverage (with trace_attributes fallback),
// risk analysis against every active zone, and maneuver parsing.
func (o *Orchestrator) assembleResponse(ctx context.Context, cand candidate, warnings []RouteWarning) (RouteResponse, error) {
	gain, loss, maxGrade := elevationStats(cand.trip)

	coverage, err := o.bikeLaneCoverage(ctx, cand)
	if err != nil {
		o.log.Warn("bike lane coverage unavailable, reporting zero coverage", zap.Error(err))
	}

	snap, err := o.riskZones.Load(ctx)
	if err != nil {
		return RouteResponse{}, err
	}
	scoreResult := riskzone.Score(cand.path, snap.Zones, o.avoidanceFactor(cand.minSeverity))

	highSeverity := 0
	for _, id := range scoreResult.ZonesPassed {
		for _, z := range snap.Zones {
			if z.ID == id && (z.Severity == riskzone.SeverityHigh || z.Severity == riskzone.SeverityCritical) {
				highSeverity++
				break
			}
		}
	}
	zoneIDs := scoreResult.ZonesPassed
	if len(zoneIDs) > 10 {
		zoneIDs = zoneIDs[:10]
	}

	legs := make([]RouteLeg, 0, len(cand.trip.Legs))
	for _, leg := range cand.trip.Legs {
		legPath := geo.DecodePolyline(leg.Shape)
		maneuvers := make([]Maneuver, 0, len(leg.Maneuvers))
		for _, m := range leg.Maneuvers {
			maneuvers = append(maneuvers, parseManeuver(m, legPath))
		}
		legs = append(legs, RouteLeg{
			Geometry:        legPath,
			DistanceMeters:  int(leg.Summary.Length * 1000),
			DurationSeconds: int(leg.Summary.Time),
			Maneuvers:       maneuvers,
		})
	}

	duration := cand.trip.Summary.Time
	if duration <= 0 {
		duration = cand.distanceM / averageMicromobilitySpeedMps
	}

	return RouteResponse{
		RouteID:  NewRouteID(),
		Geometry: cand.path,
		Summary: RouteSummary{
			DistanceMeters:      int(cand.distanceM),
			DurationSeconds:     int(duration),
			ElevationGainMeters: gain,
			ElevationLossMeters: loss,
			MaxGradePercent:     maxGrade,
			BikeLanePercentage:  coverage,
			RiskScore:           scoreResult.RiskScore,
		},
		Legs: legs,
		RiskAnalysis: RouteRiskAnalysis{
			TotalRiskZones:    len(scoreResult.ZonesPassed),
			HighSeverityZones: highSeverity,
			RiskZoneIDs:       zoneIDs,
		},
		Warnings: warnings,
	}, nil
}

// elevationStats recovers gain/loss/max-grade from the engine's per-leg
// elevation samples, spaced elevationIntervalMeters apart. Gain and loss
// accumulate independently; grade is the steepest single step observed.
func elevationStats(trip valhalla.TripOutput) (gainM, lossM int, maxGradePercent float64) {
	var gain, loss float64
	for _, leg := range trip.Legs {
		for i := 1; i < len(leg.Elevation); i++ {
			delta := leg.Elevation[i] - leg.Elevation[i-1]
			if delta > 0 {
				gain += delta
			} else {
				loss += -delta
			}
			grade := (delta / elevationIntervalMeters) * 100
			if grade < 0 {
				grade = -grade
			}
			if grade > maxGradePercent {
				maxGradePercent = grade
			}
		}
	}
	return int(gain), int(loss), maxGradePercent
}

// bikeLaneCoverage measures candidate's bicycle-infrastructure percentage,
// falling back to the engine's /trace_attributes map-matching when the
// bikeway snapshot reports zero coverage for a route that is clearly not
// zero-length — e.g. the snapshot failed to load segments covering this
// part of the city.
func (o *Orchestrator) bikeLaneCoverage(ctx context.Context, cand candidate) (float64, error) {
	result, err := o.bikeLanes.Coverage(ctx, cand.path)
	if err != nil {
		return 0, err
	}
	if result.BikeLanePercentage > 0 || cand.distanceM <= 0 {
		return result.BikeLanePercentage, nil
	}

	pct, ferr := o.traceAttributesCoverage(ctx, cand)
	if ferr != nil {
		o.log.Debug("trace_attributes bike lane fallback failed", zap.Error(ferr))
		return result.BikeLanePercentage, nil
	}
	return pct, nil
}

// onNetworkUse are trace_attributes edge.use values this gateway counts as
// cycling infrastructure for the fallback coverage estimate: dedicated
// paths and pedestrian/path edges a cyclist legally shares. "Shared" lane
// markings do not count here unless later corroborated by source data.
var onNetworkUse = map[string]bool{
	"cycleway":   true,
	"path":       true,
	"footway":    true,
	"pedestrian": true,
}

func (o *Orchestrator) traceAttributesCoverage(ctx context.Context, cand candidate) (float64, error) {
	shape := geo.EncodePolyline(cand.path)
	out, err := o.engine.TraceAttributes(ctx, &valhalla.TraceAttributesInput{
		EncodedPolyline: shape,
		Costing:         stringPtr(valhalla.RouteInputCostingBicycle),
		ShapeMatch:      stringPtr("map_snap"),
		Filters: &valhalla.TraceAttributesInputFilters{
			Attributes: []string{"edge.cycle_lane", "edge.length", "edge.use", "edge.road_class", "edge.surface"},
		},
	})
	if err != nil {
		return 0, err
	}

	var total, onNetwork float64
	for _, edge := range out.Edges {
		total += edge.LengthKM
		switch {
		case edge.CycleLane != nil && (*edge.CycleLane == "separated" || *edge.CycleLane == "dedicated"):
			onNetwork += edge.LengthKM
		case edge.Use != nil && onNetworkUse[*edge.Use]:
			onNetwork += edge.LengthKM
		}
	}
	if total <= 0 {
		return 0, nil
	}
	pct := onNetwork / total * 100
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

func stringPtr(s string) *string { return &s }

func sortCandidatesByDistance(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].distanceM < cands[j].distanceM })
}

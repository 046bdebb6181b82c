package routing

import (
	"context"

	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
)

// bikeLanePreferredSeverity is the exclusion floor bikeLanePreferred routes
// around: the same LOW threshold a plain SAFEST route uses, since
// preferring bike lanes is a cost-bias on top of, not a replacement for,
// hazard avoidance.
const bikeLanePreferredSeverity = riskzone.SeverityLow

// scoredCandidate pairs a candidate with the bike-lane coverage and validation
// result measuring it, since picking the winner needs both.
type scoredCandidate struct {
	cand       candidate
	validation riskzone.ValidationResult
	bikePct    float64
}

// bikeLanePreferred runs the four bikeLanePreferredOptions variants plus an
// alternates request against the first LOW-severity exclusion batch, then
// picks whichever valid candidate maximizes bike-lane coverage net of a
// detour penalty; if none validate, it falls back to fewest violations,
// then highest coverage.
func (o *Orchestrator) bikeLanePreferred(ctx context.Context, req RouteRequest) (candidate, []RouteWarning, error) {
	snap, err := o.riskZones.Load(ctx)
	if err != nil {
		return candidate{}, nil, err
	}

	batches, err := o.riskZones.BuildExclusionBatches(ctx, riskzone.ExclusionOptions{MinSeverity: bikeLanePreferredSeverity})
	if err != nil {
		return candidate{}, nil, err
	}
	var exclude []geo.Polygon
	if len(batches) > 0 {
		exclude = batches[0]
	}

	inputs := stage1Inputs(req, bikeLanePreferredOptions, exclude, false)
	cands, ferr := o.fanOutCandidates(ctx, inputs)
	if ferr != nil {
		return candidate{}, nil, ferr
	}
	if len(cands) == 0 {
		return candidate{}, nil, ErrRouteNotFound
	}

	minDistance := cands[0].distanceM
	scoredCands := make([]scoredCandidate, 0, len(cands))
	for _, c := range cands {
		if len(c.path) == 0 {
			continue
		}
		if c.distanceM < minDistance {
			minDistance = c.distanceM
		}
		validation := riskzone.Validate(c.path, snap.Zones, bikeLanePreferredSeverity, o.avoidanceFactor(bikeLanePreferredSeverity))
		coverage, cerr := o.bikeLanes.Coverage(ctx, c.path)
		bikePct := 0.0
		if cerr == nil {
			bikePct = coverage.BikeLanePercentage
		}
		scoredCands = append(scoredCands, scoredCandidate{cand: c, validation: validation, bikePct: bikePct})
	}
	if len(scoredCands) == 0 {
		return candidate{}, nil, ErrRouteNotFound
	}

	var valid []scoredCandidate
	for _, sc := range scoredCands {
		if sc.validation.Valid {
			valid = append(valid, sc)
		}
	}

	if len(valid) > 0 {
		best := valid[0]
		bestScore := bikeLaneScore(best, minDistance)
		for _, sc := range valid[1:] {
			if s := bikeLaneScore(sc, minDistance); s > bestScore {
				best, bestScore = sc, s
			}
		}
		return best.cand, nil, nil
	}

	best := scoredCands[0]
	for _, sc := range scoredCands[1:] {
		if sc.validation.ViolationCount < best.validation.ViolationCount ||
			(sc.validation.ViolationCount == best.validation.ViolationCount && sc.bikePct > best.bikePct) {
			best = sc
		}
	}
	return best.cand, []RouteWarning{{
		Code:    "DEGRADED_ROUTE",
		Message: "no bike-lane-preferred candidate fully avoided hazards; returning the one with fewest violations",
	}}, nil
}

// bikeLaneScore rewards coverage and penalizes detouring past 1x the
// shortest candidate's distance, at 50 coverage-points per 100% detour.
func bikeLaneScore(sc scoredCandidate, minDistance float64) float64 {
	penalty := 0.0
	if minDistance > 0 {
		detourRatio := sc.cand.distanceM/minDistance - 1
		if detourRatio > 0 {
			penalty = detourRatio * 50
		}
	}
	return sc.bikePct - penalty
}

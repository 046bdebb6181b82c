package routing

import "context"

// fastestRoute races fastestRouteOptions' four costing variants plus one
// alternates=2 request and returns whichever trip has the lowest engine
// duration. It never consults the risk-zone service — FASTEST is the one
// profile that ignores hazards entirely.
func (o *Orchestrator) fastestRoute(ctx context.Context, req RouteRequest) (candidate, []RouteWarning, error) {
	inputs := stage1Inputs(req, fastestRouteOptions, nil, false)
	cands, ferr := o.fanOutCandidates(ctx, inputs)
	if ferr != nil {
		return candidate{}, nil, ferr
	}

	var best candidate
	found := false
	for _, c := range cands {
		if len(c.path) == 0 {
			continue
		}
		if !found || c.durationS < best.durationS {
			best, found = c, true
		}
	}
	if !found {
		return candidate{}, nil, ErrRouteNotFound
	}
	return best, nil, nil
}

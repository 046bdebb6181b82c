package routing

import "context"

// plainRoute is used when the rider explicitly opts out of hazard
// avoidance (RouteRequest.AvoidRiskZones == false): it still biases costing
// by the requested profile and preferences, but never validates or
// re-routes against risk zones. Risk analysis is still computed for
// display in assembleResponse — opting out changes routing, not awareness.
func (o *Orchestrator) plainRoute(ctx context.Context, req RouteRequest) (candidate, []RouteWarning, error) {
	opt := buildCostingOptions(req.Preferences, req.VehicleType)
	inputs := stage1Inputs(req, []bicycleOptions{opt}, nil, false)
	cands, ferr := o.fanOutCandidates(ctx, inputs)
	if ferr != nil {
		return candidate{}, nil, ferr
	}
	if len(cands) == 0 {
		return candidate{}, nil, ErrRouteNotFound
	}
	return bestCandidate(cands), nil, nil
}

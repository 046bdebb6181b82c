package riskzone

import "errors"

// ErrUnavailable is returned when there is no fresh snapshot and no cached
// snapshot to fall back to. Per the gateway's safety policy, callers must
// propagate this rather than silently routing against an empty zone list.
var ErrUnavailable = errors.New("riskzone: active zone data unavailable")

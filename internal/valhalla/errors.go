package valhalla

import (
	"errors"
	"fmt"
)

// ErrEngineUnavailable is returned when the engine cannot be reached at all:
// connection refused, timeout, or a 5xx response. Callers treat it as a
// transient failure of the whole engine, never of a single request shape.
var ErrEngineUnavailable = errors.New("valhalla: engine unavailable")

// ErrEngineProtocolError is returned when the engine responds but the body
// cannot be decoded as the expected JSON shape, or the engine itself
// reports the request as malformed (4xx other than the input-validation
// cases callers are expected to have already avoided).
var ErrEngineProtocolError = errors.New("valhalla: engine protocol error")

// Point is a geographical point used in request/response bodies that the
// engine exchanges as {"lon":..,"lat":..} rather than as a location object.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// errorResponse is the error envelope the engine emits on non-2xx responses.
type errorResponse struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error"`
	StatusCode   int    `json:"status_code"`
	Status       string `json:"status"`
}

func (e *errorResponse) Error() string {
	return e.Status + ": " + e.ErrorMessage
}

func wrapProtocolErr(context string, err error) error {
	return fmt.Errorf("%s: %w: %v", context, ErrEngineProtocolError, err)
}

func wrapUnavailableErr(context string, err error) error {
	return fmt.Errorf("%s: %w: %v", context, ErrEngineUnavailable, err)
}

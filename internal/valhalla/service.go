package valhalla

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// DefaultCallTimeout bounds every outbound /route and /trace_attributes
// call; the client does not retry.
const DefaultCallTimeout = 30 * time.Second

// Route asks the engine for a route between input.Locations, decorated
// with costing, exclusion polygons, and alternates per input.
func (client *Client) Route(ctx context.Context, input *RouteInput) (*RouteOutput, error) {
	var out RouteOutput
	if err := client.doJSON(ctx, "route", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TraceAttributes map-matches the shape in input (Shape or EncodedPolyline)
// against the road network and returns per-edge attributes, used as the
// bike-lane coverage fallback when the municipal bikeway dataset reports
// zero coverage for a route of non-zero length.
func (client *Client) TraceAttributes(ctx context.Context, input *TraceAttributesInput) (*TraceAttributesOutput, error) {
	var out TraceAttributesOutput
	if err := client.doJSON(ctx, "trace_attributes", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PingTimeout bounds a readiness check against the engine's /status
// endpoint; shorter than DefaultCallTimeout since a health probe must not
// itself become the slow dependency.
const PingTimeout = 3 * time.Second

// Ping checks that the engine is reachable by calling its /status
// endpoint, returning ErrEngineUnavailable on failure.
func (client *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	req, err := client.buildBaseRequest(fasthttp.MethodGet, "status", nil)
	if err != nil {
		return wrapProtocolErr("building status request", err)
	}
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, _ := ctx.Deadline()
	if err := client.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return wrapUnavailableErr("calling status", err)
	}
	if resp.StatusCode() >= fasthttp.StatusInternalServerError {
		return wrapUnavailableErr(fmt.Sprintf("status returned %d", resp.StatusCode()), fmt.Errorf("%s", resp.Body()))
	}
	return nil
}

// doJSON executes a JSON POST against path with a DefaultCallTimeout
// deadline, classifying failures into ErrEngineUnavailable (transport,
// non-2xx) or ErrEngineProtocolError (malformed body).
func (client *Client) doJSON(ctx context.Context, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
	defer cancel()

	req, err := client.buildBaseRequest(fasthttp.MethodPost, path, body)
	if err != nil {
		return wrapProtocolErr(fmt.Sprintf("building %s request", path), err)
	}
	defer fasthttp.ReleaseRequest(req)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, _ := ctx.Deadline()
	if err := client.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return wrapUnavailableErr(fmt.Sprintf("calling %s", path), err)
	}

	if resp.StatusCode() >= fasthttp.StatusInternalServerError {
		return wrapUnavailableErr(fmt.Sprintf("%s returned %d", path, resp.StatusCode()), fmt.Errorf("%s", resp.Body()))
	}
	if resp.StatusCode() >= fasthttp.StatusBadRequest {
		var apiErr errorResponse
		if jsonErr := json.Unmarshal(resp.Body(), &apiErr); jsonErr == nil && apiErr.ErrorMessage != "" {
			return wrapProtocolErr(fmt.Sprintf("%s rejected request", path), &apiErr)
		}
		return wrapProtocolErr(fmt.Sprintf("%s returned %d", path, resp.StatusCode()), fmt.Errorf("%s", resp.Body()))
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return wrapProtocolErr(fmt.Sprintf("decoding %s response", path), err)
	}
	return nil
}

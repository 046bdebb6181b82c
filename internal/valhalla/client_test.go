package valhalla_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmobility/routing-gateway/internal/valhalla"
)

func getTestClient(t *testing.T, handler http.HandlerFunc) (*valhalla.Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := valhalla.NewClient(&valhalla.ClientConfig{Endpoint: server.URL})
	return client, server.Close
}

func TestRouteDecodesTrip(t *testing.T) {
	client, closeFn := getTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"trip":{"legs":[{"summary":{"time":120,"length":1.2},"shape":"_p~iF~ps|U"}],"summary":{"time":120,"length":1.2}}}`))
	})
	defer closeFn()

	out, err := client.Route(context.Background(), &valhalla.RouteInput{})
	require.NoError(t, err)
	assert.Equal(t, 120.0, out.Trip.Summary.Time)
	assert.Len(t, out.Trip.Legs, 1)
}

func TestRouteServerErrorIsEngineUnavailable(t *testing.T) {
	client, closeFn := getTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	defer closeFn()

	_, err := client.Route(context.Background(), &valhalla.RouteInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, valhalla.ErrEngineUnavailable))
}

func TestRouteBadRequestIsProtocolError(t *testing.T) {
	client, closeFn := getTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"no path could be found for input","status":"Bad Request","status_code":400}`))
	})
	defer closeFn()

	_, err := client.Route(context.Background(), &valhalla.RouteInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, valhalla.ErrEngineProtocolError))
}

func TestRouteMalformedBodyIsProtocolError(t *testing.T) {
	client, closeFn := getTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	})
	defer closeFn()

	_, err := client.Route(context.Background(), &valhalla.RouteInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, valhalla.ErrEngineProtocolError))
}

func TestTraceAttributesDecodesEdges(t *testing.T) {
	client, closeFn := getTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trace_attributes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"edges":[{"length":0.1,"cycle_lane":"dedicated"}]}`))
	})
	defer closeFn()

	out, err := client.TraceAttributes(context.Background(), &valhalla.TraceAttributesInput{Shape: "_p~iF~ps|U"})
	require.NoError(t, err)
	require.Len(t, out.Edges, 1)
	assert.Equal(t, "dedicated", *out.Edges[0].CycleLane)
}

package bikelane

import (
	"context"
	"fmt"

	"github.com/paulmach/go.geojson"
	"github.com/valyala/fasthttp"

	"github.com/sfmobility/routing-gateway/internal/geo"
)

// Source is the seam between this service and the SFMTA bikeway network
// dataset. Production deployments point a GeoJSONSource at the live SF
// Open Data resource; tests use a fake.
type Source interface {
	FetchSegments(ctx context.Context) ([]RawSegment, error)
}

// SFOpenDataEndpoint is the SFMTA Bikeway Network resource on SF Open Data
// — the same dataset the frontend bike lane layer renders from.
const SFOpenDataEndpoint = "https://data.sfgov.org/resource/ygmz-vaxd.geojson?$limit=10000"

// GeoJSONSource fetches a GeoJSON FeatureCollection of bikeway segments and
// extracts their LineString geometry and facility_t property, reusing the
// go.geojson wire type rather than hand-rolling GeoJSON parsing.
type GeoJSONSource struct {
	Endpoint   string
	httpClient *fasthttp.Client
}

// NewGeoJSONSource builds a Source reading a GeoJSON FeatureCollection from
// endpoint.
func NewGeoJSONSource(endpoint string) *GeoJSONSource {
	return &GeoJSONSource{
		Endpoint:   endpoint,
		httpClient: &fasthttp.Client{Name: "routing-gateway-bikelane-source"},
	}
}

// FetchSegments implements Source.
func (s *GeoJSONSource) FetchSegments(ctx context.Context) ([]RawSegment, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.Endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, hasDeadline := ctx.Deadline()
	var err error
	if hasDeadline {
		err = s.httpClient.DoDeadline(req, resp, deadline)
	} else {
		err = s.httpClient.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("bikelane: fetching bikeway network: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("bikelane: unexpected status %d fetching bikeway network", resp.StatusCode())
	}

	fc, err := geojson.UnmarshalFeatureCollection(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("bikelane: decoding bikeway network: %w", err)
	}

	var segments []RawSegment
	for _, feature := range fc.Features {
		facility, _ := feature.Properties["facility_t"].(string)
		if facility == "" || feature.Geometry == nil {
			continue
		}

		var lines [][][]float64
		switch {
		case feature.Geometry.IsLineString():
			lines = [][][]float64{feature.Geometry.LineString}
		case feature.Geometry.IsMultiLineString():
			lines = feature.Geometry.MultiLineString
		default:
			continue
		}

		for _, line := range lines {
			geometry := make(geo.Polyline, 0, len(line))
			for _, c := range line {
				if len(c) < 2 {
					continue
				}
				geometry = append(geometry, geo.Coordinate{Lon: c[0], Lat: c[1]})
			}
			if len(geometry) < 2 {
				continue
			}
			segments = append(segments, RawSegment{Geometry: geometry, Class: facility})
		}
	}

	return segments, nil
}

package riskzone

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// Source is the seam between the risk-zone service and wherever active
// zones actually live. Persistence/ingest are out of this gateway's scope;
// production deployments wire a Source backed by the spatial database.
type Source interface {
	FetchActiveZones(ctx context.Context) ([]RawZone, error)
}

// HTTPSource fetches a flat JSON array of active zones from an internal
// endpoint (e.g. a sidecar exposing the spatial database as JSON). It is a
// minimal implementation good enough to exercise the service end-to-end; it
// is not a substitute for a real ingest/storage layer.
type HTTPSource struct {
	Endpoint   string
	httpClient *fasthttp.Client
}

// NewHTTPSource builds a Source that GETs a JSON zone array from endpoint.
func NewHTTPSource(endpoint string) *HTTPSource {
	return &HTTPSource{
		Endpoint:   endpoint,
		httpClient: &fasthttp.Client{Name: "routing-gateway-riskzone-source"},
	}
}

type wireZone struct {
	ID              string  `json:"id"`
	Lon             float64 `json:"lon"`
	Lat             float64 `json:"lat"`
	RadiusMeters    float64 `json:"alert_radius_meters"`
	ReportedCount   int     `json:"reported_count"`
	HazardType      string  `json:"hazard_type"`
	ConfidenceScore float64 `json:"confidence_score"`
	IsPermanent     bool    `json:"is_permanent"`
	Source          string  `json:"source"`
	SourceID        string  `json:"source_id"`
}

// FetchActiveZones implements Source.
func (s *HTTPSource) FetchActiveZones(ctx context.Context) ([]RawZone, error) {
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
		return nil, fmt.Errorf("riskzone: fetching active zones: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("riskzone: unexpected status %d fetching active zones", resp.StatusCode())
	}

	var wire []wireZone
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("riskzone: decoding active zones: %w", err)
	}

	raw := make([]RawZone, 0, len(wire))
	for _, z := range wire {
		raw = append(raw, RawZone{
			ID:              z.ID,
			Lon:             z.Lon,
			Lat:             z.Lat,
			RadiusMeters:    z.RadiusMeters,
			ReportedCount:   z.ReportedCount,
			HazardType:      HazardType(z.HazardType),
			ConfidenceScore: z.ConfidenceScore,
			IsPermanent:     z.IsPermanent,
			Source:          z.Source,
			SourceID:        z.SourceID,
		})
	}
	return raw, nil
}

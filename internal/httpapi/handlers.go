package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/sfmobility/routing-gateway/internal/bikelane"
	"github.com/sfmobility/routing-gateway/internal/geo"
	"github.com/sfmobility/routing-gateway/internal/riskzone"
	"github.com/sfmobility/routing-gateway/internal/routing"
)

// enginePinger is the subset of valhalla.Client the readiness check needs;
// narrowed to an interface so handler tests can fake it.
type enginePinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds the dependencies every route handler needs.
type Handlers struct {
	orchestrator *routing.Orchestrator
	riskZones    *riskzone.Service
	bikeLanes    *bikelane.Service
	engine       enginePinger
	validate     *validator.Validate
	log          *zap.Logger
}

// New builds a Handlers wired against the gateway's core services.
func New(orchestrator *routing.Orchestrator, riskZones *riskzone.Service, bikeLanes *bikelane.Service, engine enginePinger, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{orchestrator: orchestrator, riskZones: riskZones, bikeLanes: bikeLanes, engine: engine, validate: validator.New(), log: log}
}

func requestID(r *http.Request) string {
	return requestIDFromContext(r.Context())
}

func (h *Handlers) decodeRouteRequest(w http.ResponseWriter, r *http.Request) (routing.RouteRequest, bool) {
	var req routing.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, requestID(r), "request body is not valid JSON")
		return routing.RouteRequest{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, requestID(r), err.Error())
		return routing.RouteRequest{}, false
	}
	return req, true
}

// CalculateRoute handles POST /api/v1/routes/calculate.
func (h *Handlers) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	resp, err := h.orchestrator.Calculate(r.Context(), req)
	if err != nil {
		writeError(w, requestID(r), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// CalculateAlternatives handles POST /api/v1/routes/alternatives.
func (h *Handlers) CalculateAlternatives(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRouteRequest(w, r)
	if !ok {
		return
	}
	resp, err := h.orchestrator.Alternatives(r.Context(), req)
	if err != nil {
		writeError(w, requestID(r), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// zoneDTO is the wire shape a risk zone is rendered as; riskzone.Zone
// itself carries no JSON tags since it is an internal domain type.
type zoneDTO struct {
	ID              string   `json:"id"`
	Lon             float64  `json:"lon"`
	Lat             float64  `json:"lat"`
	RadiusMeters    float64  `json:"radius_meters"`
	ReportedCount   int      `json:"reported_count"`
	Severity        string   `json:"severity"`
	HazardType      string   `json:"hazard_type"`
	ConfidenceScore float64  `json:"confidence_score"`
	IsPermanent     bool     `json:"is_permanent"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
}

func toZoneDTO(z riskzone.Zone) zoneDTO {
	return zoneDTO{
		ID:              z.ID,
		Lon:             z.Center.Lon,
		Lat:             z.Center.Lat,
		RadiusMeters:    z.RadiusMeters,
		ReportedCount:   z.ReportedCount,
		Severity:        string(z.Severity),
		HazardType:      string(z.HazardType),
		ConfidenceScore: z.ConfidenceScore,
		IsPermanent:     z.IsPermanent,
	}
}

// withinBBox reports whether z's center falls within the minLon,minLat,
// maxLon,maxLat box.
func withinBBox(z riskzone.Zone, minLon, minLat, maxLon, maxLat float64) bool {
	return z.Center.Lon >= minLon && z.Center.Lon <= maxLon &&
		z.Center.Lat >= minLat && z.Center.Lat <= maxLat
}

// parseBBox parses "minLon,minLat,maxLon,maxLat"; any arity other than 4,
// or a non-numeric component, is malformed.
func parseBBox(raw string) (minLon, minLat, maxLon, maxLat float64, ok bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, false
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], true
}

// ListRiskZones handles GET /api/v1/risk-zones?bbox=&severity=&types=.
// bbox is required; a missing or malformed bbox is a 400, not the usual
// 422 validation error, matching the engine-protocol-adjacent contract
// this endpoint exposes rather than the orchestrator's own taxonomy.
func (h *Handlers) ListRiskZones(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	raw := q.Get("bbox")
	if raw == "" {
		writeBadRequest(w, requestID(r), "bbox query parameter is required")
		return
	}
	minLon, minLat, maxLon, maxLat, ok := parseBBox(raw)
	if !ok {
		writeBadRequest(w, requestID(r), "bbox must be minLon,minLat,maxLon,maxLat")
		return
	}

	snap, err := h.riskZones.Load(r.Context())
	if err != nil {
		writeError(w, requestID(r), err)
		return
	}

	zones := snap.Zones
	if min := q.Get("severity"); min != "" {
		zones = riskzone.FilterBySeverity(zones, riskzone.Severity(strings.ToUpper(min)))
	}

	var types map[string]bool
	if raw := q.Get("types"); raw != "" {
		types = make(map[string]bool)
		for _, t := range strings.Split(raw, ",") {
			types[strings.ToLower(strings.TrimSpace(t))] = true
		}
	}

	dtos := make([]zoneDTO, 0, len(zones))
	for _, z := range zones {
		if !withinBBox(z, minLon, minLat, maxLon, maxLat) {
			continue
		}
		if types != nil && !types[string(z.HazardType)] {
			continue
		}
		dtos = append(dtos, toZoneDTO(z))
	}
	writeJSON(w, http.StatusOK, dtos)
}

const (
	minNearRadiusMeters = 10.0
	maxNearRadiusMeters = 1000.0
)

// NearRiskZones handles GET /api/v1/risk-zones/near?lat=&lon=&radius=.
func (h *Handlers) NearRiskZones(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeBadRequest(w, requestID(r), "lat and lon query parameters are required and must be numeric")
		return
	}
	radius, radErr := strconv.ParseFloat(q.Get("radius"), 64)
	if radErr != nil || radius < minNearRadiusMeters || radius > maxNearRadiusMeters {
		writeBadRequest(w, requestID(r), "radius must be numeric and within [10,1000]")
		return
	}

	snap, err := h.riskZones.Load(r.Context())
	if err != nil {
		writeError(w, requestID(r), err)
		return
	}

	center := geo.Coordinate{Lat: lat, Lon: lon}
	dtos := make([]zoneDTO, 0)
	for _, z := range snap.Zones {
		d := geo.HaversineMeters(center, z.Center)
		if d <= radius {
			dto := toZoneDTO(z)
			dto.DistanceMeters = &d
			dtos = append(dtos, dto)
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"zones":                dtos,
		"total":                len(dtos),
		"query_location":       map[string]float64{"lat": lat, "lon": lon},
		"query_radius_meters":  radius,
	})
}

// Health handles GET /api/v1/health: a liveness check that never touches a
// backing service.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDB handles GET /api/v1/health/db: a readiness check against the
// risk-zone snapshot, the one dependency this gateway treats as
// safety-critical rather than advisory.
func (h *Handlers) HealthDB(w http.ResponseWriter, r *http.Request) {
	if _, err := h.riskZones.Load(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthReady handles GET /api/v1/health/ready: readiness across every
// backing dependency the orchestrator needs to serve a real request — the
// risk-zone snapshot and the routing engine itself. This gateway has no
// database or cache tier of its own (see SPEC_FULL.md §11 Non-goals), so
// those legs of the original's {db, engine, redis} check collapse onto
// the risk-zone service, which is the closest analogue it actually owns.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.riskZones.Load(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "reason": "risk zone data unavailable"})
		return
	}
	if h.engine != nil {
		if err := h.engine.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready", "reason": "routing engine unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

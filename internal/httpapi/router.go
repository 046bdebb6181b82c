package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// AuthMiddleware is a documented no-op passthrough: authentication and
// authorization are boundary concerns out of scope for this gateway (see
// SPEC_FULL.md §11). It exists so the router shape matches a deployment
// that will insert a real implementation without restructuring routes.
func AuthMiddleware(next http.Handler) http.Handler {
	return next
}

// NewRouter wires the full HTTP surface: request ID propagation, CORS,
// panic recovery, and the thin route table from SPEC_FULL.md §6.1.
func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(AuthMiddleware)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/routes/calculate", h.CalculateRoute)
		api.Post("/routes/alternatives", h.CalculateAlternatives)
		api.Get("/risk-zones", h.ListRiskZones)
		api.Get("/risk-zones/near", h.NearRiskZones)
		api.Get("/health", h.Health)
		api.Get("/health/db", h.HealthDB)
		api.Get("/health/ready", h.HealthReady)
	})

	return r
}

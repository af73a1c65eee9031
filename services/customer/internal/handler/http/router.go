package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/health"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/middleware"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/customer/internal/service"
)

// NewRouter creates the customer service router.
func NewRouter(svc *service.CustomerService, healthHandler *health.Handler, log *slog.Logger, apiKey string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.PrometheusMetrics("customer"))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/soap", NewSoapHandler(svc, log, apiKey).ServeHTTP)

	return r
}

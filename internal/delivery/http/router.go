package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"techfestbackend/internal/delivery/http/controllers"
	"techfestbackend/internal/delivery/http/middleware"
	"techfestbackend/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	registrationController *controllers.RegistrationController,
	teamController *controllers.TeamController,
	adminController *controllers.AdminController,
	healthController *controllers.HealthController,
	tokenVerifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(tokenVerifier)

	// Public API
	mux.HandleFunc("POST /api/register", registrationController.Register)
	mux.HandleFunc("GET /api/registrations/{id}", registrationController.Lookup)
	mux.HandleFunc("POST /api/teams/register", teamController.Register)
	mux.HandleFunc("GET /api/teams/registrations/{id}", teamController.Lookup)

	// Admin
	mux.HandleFunc("POST /api/admin/login", adminController.Login)
	mux.HandleFunc("GET /api/admin/registrations", requireAuth(adminController.ListRegistrations))
	mux.HandleFunc("GET /api/admin/counters", requireAuth(adminController.Counters))

	// Operational
	mux.HandleFunc("GET /healthz", healthController.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

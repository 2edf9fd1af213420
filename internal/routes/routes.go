package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"HEALTHAPI_BACK-END/internal/config"
	"HEALTHAPI_BACK-END/internal/handlers"
	"HEALTHAPI_BACK-END/internal/middleware"
	"HEALTHAPI_BACK-END/internal/store"
)

// SetupRoutes configures all application routes and returns the mux
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	patientHandler *handlers.PatientHandler,
	consultationHandler *handlers.ConsultationHandler,
	logsHandler *handlers.LogsHandler,
	healthHandler *handlers.HealthHandler,
	users store.UserStore,
	cfg *config.Config,
) *http.ServeMux {
	mux := http.NewServeMux()

	// protect wraps a handler with bearer-token authentication
	protect := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, users, &cfg.JWT)
	}

	// Public routes
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.HealthCheck)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// Audit trail: public by default, admin-only when configured
	if cfg.Audit.PublicLogs {
		mux.HandleFunc("GET /logs", logsHandler.List)
	} else {
		mux.HandleFunc("GET /logs", protect(logsHandler.ListRestricted))
	}

	// Patient routes
	mux.HandleFunc("GET /pacientes/{$}", protect(patientHandler.List))
	mux.HandleFunc("GET /pacientes/me", protect(patientHandler.Me))
	mux.HandleFunc("GET /pacientes/{id}", protect(patientHandler.Get))
	mux.HandleFunc("PUT /pacientes/{id}", protect(patientHandler.Update))
	mux.HandleFunc("DELETE /pacientes/{id}", protect(patientHandler.Delete))

	// Consultation routes
	mux.HandleFunc("POST /consultas/{$}", protect(consultationHandler.Create))
	mux.HandleFunc("GET /consultas/{$}", protect(consultationHandler.List))
	mux.HandleFunc("GET /consultas/{id}", protect(consultationHandler.Get))
	mux.HandleFunc("PUT /consultas/{id}", protect(consultationHandler.Update))
	mux.HandleFunc("DELETE /consultas/{id}", protect(consultationHandler.Delete))

	// Swagger UI
	mux.Handle("/docs/", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	return mux
}

package http

import (
	"net/http"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/http/handler"
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	metricsHandler     *handler.MetricsHandler
	moduleHandler      *handler.ModuleHandler
	directoryHandler   *handler.DirectoryHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	metricsHandler *handler.MetricsHandler,
	moduleHandler *handler.ModuleHandler,
	directoryHandler *handler.DirectoryHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		metricsHandler:     metricsHandler,
		moduleHandler:      moduleHandler,
		directoryHandler:   directoryHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/", r.root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Marketing catalog (public)
	modules := r.router.PathPrefix("/modules").Subrouter()
	modules.HandleFunc("/preview", r.moduleHandler.Preview).Methods(http.MethodGet)
	modules.HandleFunc("/v1", r.moduleHandler.V1Features).Methods(http.MethodGet)

	// Appointments (protected)
	appointments := r.router.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/queue/{doctor_id}", r.appointmentHandler.Queue).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Metrics (protected)
	metrics := r.router.PathPrefix("/metrics").Subrouter()
	metrics.Use(r.authMiddleware.Authenticate)
	metrics.HandleFunc("/overview", r.metricsHandler.Overview).Methods(http.MethodGet)
	metrics.HandleFunc("/dashboard/{role}", r.metricsHandler.Dashboard).Methods(http.MethodGet)

	// Rosters (protected)
	doctors := r.router.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.directoryHandler.ListDoctors).Methods(http.MethodGet)

	// Patient roster is staff-only
	patients := r.router.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireStaff)
	patients.HandleFunc("", r.directoryHandler.ListPatients).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "HealthCare Management API is running"}`))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}

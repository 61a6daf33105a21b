package http

import (
	"net/http"

	"health-program-registry/internal/delivery/http/handler"
	"health-program-registry/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	clientHandler     *handler.ClientHandler
	programHandler    *handler.ProgramHandler
	enrollmentHandler *handler.EnrollmentHandler
	auditLogHandler   *handler.AuditLogHandler
	webHandler        *handler.WebHandler
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientHandler,
	programHandler *handler.ProgramHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	webHandler *handler.WebHandler,
	authMiddleware *middleware.AuthMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		clientHandler:     clientHandler,
		programHandler:    programHandler,
		enrollmentHandler: enrollmentHandler,
		auditLogHandler:   auditLogHandler,
		webHandler:        webHandler,
		authMiddleware:    authMiddleware,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Registry routes (protected - any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Client management
	protected.HandleFunc("/clients", r.clientHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", r.clientHandler.GetAllClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/search", r.clientHandler.SearchClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)

	// Program management
	protected.HandleFunc("/programs", r.programHandler.CreateProgram).Methods(http.MethodPost)
	protected.HandleFunc("/programs", r.programHandler.GetAllPrograms).Methods(http.MethodGet)
	protected.HandleFunc("/programs/{id}", r.programHandler.GetProgram).Methods(http.MethodGet)
	protected.HandleFunc("/programs/{id}", r.programHandler.UpdateProgram).Methods(http.MethodPut)

	// Enrollment management
	protected.HandleFunc("/clients/{id}/programs", r.enrollmentHandler.GetClientPrograms).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}/programs/{programId}", r.enrollmentHandler.EnrollClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id}/programs/{programId}", r.enrollmentHandler.UnenrollClient).Methods(http.MethodDelete)
	protected.HandleFunc("/programs/{id}/clients", r.enrollmentHandler.GetProgramClients).Methods(http.MethodGet)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	// Web routes (public)
	r.router.HandleFunc("/login", r.webHandler.LoginForm).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.webHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.webHandler.Logout).Methods(http.MethodGet)

	// Web routes (session protected)
	webProtected := r.router.PathPrefix("/").Subrouter()
	webProtected.Use(r.sessionMiddleware.RequireSession)
	webProtected.HandleFunc("/", r.webHandler.Index).Methods(http.MethodGet)
	webProtected.HandleFunc("/clients", r.webHandler.Clients).Methods(http.MethodGet)
	webProtected.HandleFunc("/clients/new", r.webHandler.NewClientForm).Methods(http.MethodGet)
	webProtected.HandleFunc("/clients/new", r.webHandler.NewClient).Methods(http.MethodPost)
	webProtected.HandleFunc("/clients/search", r.webHandler.SearchClients).Methods(http.MethodGet)
	webProtected.HandleFunc("/clients/{id}", r.webHandler.ClientDetail).Methods(http.MethodGet)
	webProtected.HandleFunc("/programs", r.webHandler.Programs).Methods(http.MethodGet)
	webProtected.HandleFunc("/programs/new", r.webHandler.NewProgramForm).Methods(http.MethodGet)
	webProtected.HandleFunc("/programs/new", r.webHandler.NewProgram).Methods(http.MethodPost)
	webProtected.HandleFunc("/enroll", r.webHandler.Enroll).Methods(http.MethodPost)
	webProtected.HandleFunc("/unenroll", r.webHandler.Unenroll).Methods(http.MethodPost)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

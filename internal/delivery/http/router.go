package http

import (
	"net/http"

	"serviturnos-api/internal/delivery/http/handler"
	"serviturnos-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	customerHandler     *handler.CustomerHandler
	professionalHandler *handler.ProfessionalHandler
	adminHandler        *handler.AdminHandler
	meetingHandler      *handler.MeetingHandler
	timeSlotHandler     *handler.TimeSlotHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	professionalHandler *handler.ProfessionalHandler,
	adminHandler *handler.AdminHandler,
	meetingHandler *handler.MeetingHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		customerHandler:     customerHandler,
		professionalHandler: professionalHandler,
		adminHandler:        adminHandler,
		meetingHandler:      meetingHandler,
		timeSlotHandler:     timeSlotHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/customer", r.authHandler.RegisterCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Time slot catalog (public)
	api.HandleFunc("/time-slots", r.timeSlotHandler.GetAll).Methods(http.MethodGet)

	// Customer routes (any authenticated user)
	customers := api.PathPrefix("/customers").Subrouter()
	customers.Use(r.authMiddleware.Authenticate)
	customers.HandleFunc("", r.customerHandler.GetAll).Methods(http.MethodGet)
	customers.HandleFunc("/{id}", r.customerHandler.Get).Methods(http.MethodGet)
	customers.HandleFunc("/{id}", r.customerHandler.Update).Methods(http.MethodPut)

	// Professional routes (any authenticated user reads, professional edits)
	professionals := api.PathPrefix("/professionals").Subrouter()
	professionals.Use(r.authMiddleware.Authenticate)
	professionals.HandleFunc("", r.professionalHandler.GetAll).Methods(http.MethodGet)
	professionals.HandleFunc("/{id}", r.professionalHandler.Get).Methods(http.MethodGet)
	professionals.HandleFunc("/{id}", r.professionalHandler.Update).Methods(http.MethodPut)

	// Slot membership (professional or admin)
	slots := professionals.PathPrefix("/{id}/slots").Subrouter()
	slots.Use(middleware.RequireAdminOrProfessional)
	slots.HandleFunc("/available/{slot_id}", r.professionalHandler.AddAvailableSlot).Methods(http.MethodPost)
	slots.HandleFunc("/available/{slot_id}", r.professionalHandler.RemoveAvailableSlot).Methods(http.MethodDelete)
	slots.HandleFunc("/available", r.professionalHandler.ClearAvailableSlots).Methods(http.MethodDelete)
	slots.HandleFunc("/not-available/{slot_id}", r.professionalHandler.AddNotAvailableSlot).Methods(http.MethodPost)
	slots.HandleFunc("/not-available/{slot_id}", r.professionalHandler.RemoveNotAvailableSlot).Methods(http.MethodDelete)
	slots.HandleFunc("/not-available", r.professionalHandler.ClearNotAvailableSlots).Methods(http.MethodDelete)
	slots.HandleFunc("/available/{slot_id}/move", r.professionalHandler.MoveToNotAvailable).Methods(http.MethodPost)
	slots.HandleFunc("/not-available/{slot_id}/move", r.professionalHandler.MoveToAvailable).Methods(http.MethodPost)

	// Meeting routes (any authenticated user)
	meetings := api.PathPrefix("/meetings").Subrouter()
	meetings.Use(r.authMiddleware.Authenticate)
	meetings.HandleFunc("", r.meetingHandler.Create).Methods(http.MethodPost)
	meetings.HandleFunc("", r.meetingHandler.GetAll).Methods(http.MethodGet)
	meetings.HandleFunc("/customer/{customer_id}", r.meetingHandler.GetByCustomer).Methods(http.MethodGet)
	meetings.HandleFunc("/professional/{professional_id}", r.meetingHandler.GetByProfessional).Methods(http.MethodGet)
	meetings.HandleFunc("/professional/{professional_id}/pending", r.meetingHandler.GetPendingForProfessional).Methods(http.MethodGet)
	meetings.HandleFunc("/{id}", r.meetingHandler.Get).Methods(http.MethodGet)
	meetings.HandleFunc("/{id}", r.meetingHandler.Update).Methods(http.MethodPut)
	meetings.HandleFunc("/{id}/accept", r.meetingHandler.Accept).Methods(http.MethodPost)
	meetings.HandleFunc("/{id}/reject", r.meetingHandler.Reject).Methods(http.MethodPost)
	meetings.HandleFunc("/{id}/cancel", r.meetingHandler.Cancel).Methods(http.MethodPost)
	meetings.HandleFunc("/{id}/finalize", r.meetingHandler.Finalize).Methods(http.MethodPost)

	// Customer may hide their own meeting; admin may remove it for good
	meetings.HandleFunc("/{id}/soft-delete", r.meetingHandler.SoftDelete).Methods(http.MethodPost)
	meetingAdmin := meetings.NewRoute().Subrouter()
	meetingAdmin.Use(middleware.RequireAdmin)
	meetingAdmin.HandleFunc("/{id}", r.meetingHandler.HardDelete).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/register", r.authHandler.RegisterAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/admins", r.adminHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/admins/{id}", r.adminHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/admins/{id}", r.adminHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/admins/{id}/soft-delete", r.adminHandler.SoftDelete).Methods(http.MethodPost)
	admin.HandleFunc("/admins/{id}", r.adminHandler.HardDelete).Methods(http.MethodDelete)

	// Account moderation (admin)
	admin.HandleFunc("/customers/{id}/soft-delete", r.customerHandler.SoftDelete).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{id}", r.customerHandler.HardDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/professionals/{id}/soft-delete", r.professionalHandler.SoftDelete).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.HardDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.adminHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

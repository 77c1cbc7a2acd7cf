package http

import (
	"net/http"

	"vet-appointments-service/internal/delivery/http/handler"
	"vet-appointments-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	healthHandler        *handler.HealthHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	attachmentHandler    *handler.AttachmentHandler
	vaccinationHandler   *handler.VaccinationHandler
	dewormingHandler     *handler.DewormingHandler
	prescriptionHandler  *handler.PrescriptionHandler
	pharmacyHandler      *handler.PharmacyHandler
	reminderHandler      *handler.ReminderHandler
	dashboardHandler     *handler.DashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	attachmentHandler *handler.AttachmentHandler,
	vaccinationHandler *handler.VaccinationHandler,
	dewormingHandler *handler.DewormingHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	pharmacyHandler *handler.PharmacyHandler,
	reminderHandler *handler.ReminderHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		healthHandler:        healthHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		attachmentHandler:    attachmentHandler,
		vaccinationHandler:   vaccinationHandler,
		dewormingHandler:     dewormingHandler,
		prescriptionHandler:  prescriptionHandler,
		pharmacyHandler:      pharmacyHandler,
		reminderHandler:      reminderHandler,
		dashboardHandler:     dashboardHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check (public)
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Everything else requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Medical records per appointment
	protected.HandleFunc("/appointments/{id}/medical-record", r.medicalRecordHandler.GetByAppointment).Methods(http.MethodGet)

	// Prescriptions per appointment
	protected.HandleFunc("/appointments/{id}/prescription", r.prescriptionHandler.GetByAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/my-prescriptions", r.prescriptionHandler.GetMyPrescriptions).Methods(http.MethodGet)

	// Pharmacy fulfillment
	protected.HandleFunc("/pharmacy/orders", r.pharmacyHandler.GetOrders).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy/orders/{id}", r.pharmacyHandler.GetOrder).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy/orders/{id}/status", r.pharmacyHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/pharmacy/my-orders", r.pharmacyHandler.GetMyOrders).Methods(http.MethodGet)

	// Clinical history and preventive care (read side)
	protected.HandleFunc("/patients/{petId}/medical-history", r.medicalRecordHandler.GetHistoryByPet).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{petId}/vaccinations", r.vaccinationHandler.GetByPet).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{petId}/dewormings", r.dewormingHandler.GetByPet).Methods(http.MethodGet)
	protected.HandleFunc("/vaccinations/upcoming", r.vaccinationHandler.GetUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/dewormings/upcoming", r.dewormingHandler.GetUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{recordId}/attachments", r.attachmentHandler.ListByRecord).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/attachments/{id}/download", r.attachmentHandler.Download).Methods(http.MethodGet)

	// Reminder scans
	protected.HandleFunc("/reminders", r.reminderHandler.GetReminders).Methods(http.MethodGet)
	protected.HandleFunc("/reminders/send", r.reminderHandler.SendReminders).Methods(http.MethodPost)

	// Veterinarian-only clinical writes
	vet := protected.NewRoute().Subrouter()
	vet.Use(middleware.RequireVeterinarian)
	vet.HandleFunc("/appointments/{id}/attention", r.appointmentHandler.UpdateAttention).Methods(http.MethodPut)
	vet.HandleFunc("/appointments/{id}/medical-record", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	vet.HandleFunc("/appointments/{id}/medical-record", r.medicalRecordHandler.Update).Methods(http.MethodPut)
	vet.HandleFunc("/appointments/{id}/prescription", r.prescriptionHandler.Create).Methods(http.MethodPost)
	vet.HandleFunc("/patients/{petId}/vaccinations", r.vaccinationHandler.Create).Methods(http.MethodPost)
	vet.HandleFunc("/patients/{petId}/dewormings", r.dewormingHandler.Create).Methods(http.MethodPost)
	vet.HandleFunc("/vaccinations/{id}", r.vaccinationHandler.Update).Methods(http.MethodPut)
	vet.HandleFunc("/vaccinations/{id}", r.vaccinationHandler.Delete).Methods(http.MethodDelete)
	vet.HandleFunc("/dewormings/{id}", r.dewormingHandler.Update).Methods(http.MethodPut)
	vet.HandleFunc("/dewormings/{id}", r.dewormingHandler.Delete).Methods(http.MethodDelete)
	vet.HandleFunc("/medical-records/{recordId}/attachments", r.attachmentHandler.Upload).Methods(http.MethodPost)
	vet.HandleFunc("/medical-records/attachments/{id}", r.attachmentHandler.Delete).Methods(http.MethodDelete)
	vet.HandleFunc("/appointments/veterinarian/schedule", r.appointmentHandler.GetSchedule).Methods(http.MethodGet)
	vet.HandleFunc("/dashboard/veterinarian", r.dashboardHandler.GetVeterinarianDashboard).Methods(http.MethodGet)
	vet.HandleFunc("/dashboard/follow-ups", r.dashboardHandler.GetFollowUps).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/medblocks/records-service/internal/complaint"
	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/messaging"
	"github.com/medblocks/records-service/internal/patient"
	"github.com/medblocks/records-service/internal/query"
	"github.com/medblocks/records-service/internal/telemetry"
)

// SetupRouter initializes all routes for the application
func SetupRouter(provider *db.Provider, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// Initialize patient components
	patientRepo := patient.NewRepository(provider)
	patientService := patient.NewService(patientRepo, publisher)

	// Initialize complaint components
	complaintRepo := complaint.NewRepository(provider)
	complaintService := complaint.NewService(complaintRepo, publisher)
	complaintHandler := complaint.NewHandler(complaintService, metrics)

	patientHandler := patient.NewHandler(patientService, complaintService, metrics)

	// Initialize ad-hoc query components
	gateway := query.NewGateway(provider)
	queryHandler := query.NewHandler(gateway, metrics)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("records-service"))
	r.Use(CORSMiddleware)
	if metrics != nil {
		r.Use(MetricsMiddleware(metrics))
	}

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"records-service"}`))
	}).Methods("GET")

	// Patient routes
	r.HandleFunc("/patients", patientHandler.Register).Methods("POST")
	r.HandleFunc("/patients", patientHandler.List).Methods("GET")
	r.HandleFunc("/patients/{id}", patientHandler.Get).Methods("GET")

	// Complaint routes
	r.HandleFunc("/patients/{id}/complaints", complaintHandler.File).Methods("POST")
	r.HandleFunc("/patients/{id}/complaints", complaintHandler.ListByPatient).Methods("GET")

	// Ad-hoc read-only query route
	r.HandleFunc("/query", queryHandler.Run).Methods("POST")

	return r
}

package patient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medblocks/records-service/internal/complaint"
	"github.com/medblocks/records-service/internal/telemetry"
)

// ComplaintLister supplies the complaint history shown on the patient
// detail view.
type ComplaintLister interface {
	ListByPatient(ctx context.Context, patientID int64) ([]complaint.Complaint, error)
}

type Handler struct {
	service    ServiceInterface
	complaints ComplaintLister
	metrics    *telemetry.Metrics
}

func NewHandler(service ServiceInterface, complaints ComplaintLister, metrics *telemetry.Metrics) *Handler {
	return &Handler{
		service:    service,
		complaints: complaints,
		metrics:    metrics,
	}
}

type RegisterPatientResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type PatientListResponse struct {
	Success  bool      `json:"success"`
	Patients []Patient `json:"patients"`
	Total    int       `json:"total"`
}

type PatientDetailResponse struct {
	Success    bool                  `json:"success"`
	Patient    *Patient              `json:"patient"`
	Complaints []complaint.Complaint `json:"complaints"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	id, err := h.service.Register(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "registration_failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.RecordPatientOperation(r.Context(), "register")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterPatientResponse{
		Success: true,
		Message: "Patient registered successfully",
		ID:      id,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	patients, err := h.service.List(r.Context(), search)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", "An error occurred while loading data.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PatientListResponse{
		Success:  true,
		Patients: patients,
		Total:    len(patients),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Patient id must be an integer")
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "load_failed", "An error occurred while loading data.")
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "Patient with that ID does not exist in the system.")
		return
	}

	complaints, err := h.complaints.ListByPatient(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "load_failed", "An error occurred while loading data.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PatientDetailResponse{
		Success:    true,
		Patient:    p,
		Complaints: complaints,
	})
}

func isValidationError(err error) bool {
	for _, verr := range []error{ErrMissingName, ErrMissingPhone, ErrMissingDOB, ErrMissingSex, ErrInvalidSex} {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

package complaint

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/telemetry"
)

type Handler struct {
	service ServiceInterface
	metrics *telemetry.Metrics
}

func NewHandler(service ServiceInterface, metrics *telemetry.Metrics) *Handler {
	return &Handler{service: service, metrics: metrics}
}

type ComplaintSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ComplaintListResponse struct {
	Success    bool        `json:"success"`
	Complaints []Complaint `json:"complaints"`
	Total      int         `json:"total"`
}

func (h *Handler) File(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Patient id must be an integer")
		return
	}

	var req FileComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if err := h.service.File(r.Context(), patientID, req); err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		var insertErr *db.InsertError
		if errors.As(err, &insertErr) {
			respondError(w, http.StatusUnprocessableEntity, "complaint_rejected", "Complaint was rejected by the database. Does the patient exist?")
			return
		}
		respondError(w, http.StatusInternalServerError, "filing_failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.RecordComplaintOperation(r.Context(), "file")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ComplaintSuccessResponse{
		Success: true,
		Message: "Complaint filed successfully",
	})
}

func (h *Handler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Patient id must be an integer")
		return
	}

	complaints, err := h.service.ListByPatient(r.Context(), patientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "list_failed", "An error occurred while loading data.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComplaintListResponse{
		Success:    true,
		Complaints: complaints,
		Total:      len(complaints),
	})
}

func isValidationError(err error) bool {
	for _, verr := range []error{ErrMissingDate, ErrMissingComplaint, ErrMissingDoctor, ErrMissingMedicine} {
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

package query

import (
	"encoding/json"
	"net/http"

	"github.com/medblocks/records-service/internal/engine"
	"github.com/medblocks/records-service/internal/telemetry"
)

type Handler struct {
	gateway *Gateway
	metrics *telemetry.Metrics
}

func NewHandler(gateway *Gateway, metrics *telemetry.Metrics) *Handler {
	return &Handler{gateway: gateway, metrics: metrics}
}

type RunQueryRequest struct {
	Query string `json:"query"`
}

type RunQueryResponse struct {
	Success bool         `json:"success"`
	Rows    []engine.Row `json:"rows"`
	Message string       `json:"message,omitempty"`
}

// Run executes an ad-hoc read-only query. A rejected or failed query is
// still a 200: the failure is data, with a generic message and no
// underlying error detail.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "invalid_request",
			"message": "Invalid JSON payload: " + err.Error(),
		})
		return
	}

	result := h.gateway.Run(r.Context(), req.Query)

	if h.metrics != nil {
		h.metrics.RecordQueryRun(r.Context(), result.Success)
	}

	resp := RunQueryResponse{Success: result.Success, Rows: result.Rows}
	if !result.Success {
		resp.Message = "Not valid SQL SELECT statement for the current database schema."
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/medblocks/records-service/internal/complaint"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	registerFunc func(ctx context.Context, req RegisterPatientRequest) (int64, error)
	listFunc     func(ctx context.Context, search string) ([]Patient, error)
	getFunc      func(ctx context.Context, id int64) (*Patient, error)
}

func (m *mockService) Register(ctx context.Context, req RegisterPatientRequest) (int64, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return 0, errors.New("not implemented")
}

func (m *mockService) List(ctx context.Context, search string) ([]Patient, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, search)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) Get(ctx context.Context, id int64) (*Patient, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

type mockComplaintLister struct {
	listFunc func(ctx context.Context, patientID int64) ([]complaint.Complaint, error)
}

func (m *mockComplaintLister) ListByPatient(ctx context.Context, patientID int64) ([]complaint.Complaint, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, patientID)
	}
	return nil, nil
}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/patients", h.Register).Methods("POST")
	r.HandleFunc("/patients", h.List).Methods("GET")
	r.HandleFunc("/patients/{id}", h.Get).Methods("GET")
	return r
}

func TestHandlerRegister_Created(t *testing.T) {
	service := &mockService{
		registerFunc: func(ctx context.Context, req RegisterPatientRequest) (int64, error) {
			return 5, nil
		},
	}
	handler := NewHandler(service, &mockComplaintLister{}, nil)

	body, _ := json.Marshal(RegisterPatientRequest{
		Name: "Jane Doe", Phone: "555-1234", DOB: "1990-01-01", Sex: "female",
	})
	req := httptest.NewRequest("POST", "/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp RegisterPatientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if !resp.Success || resp.ID != 5 {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestHandlerRegister_ValidationError(t *testing.T) {
	service := &mockService{
		registerFunc: func(ctx context.Context, req RegisterPatientRequest) (int64, error) {
			return 0, ErrMissingName
		},
	}
	handler := NewHandler(service, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("POST", "/patients", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestHandlerRegister_InvalidJSON(t *testing.T) {
	handler := NewHandler(&mockService{}, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("POST", "/patients", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestHandlerGet_NotFound(t *testing.T) {
	service := &mockService{
		getFunc: func(ctx context.Context, id int64) (*Patient, error) {
			return nil, nil
		},
	}
	handler := NewHandler(service, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("GET", "/patients/42", nil)
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Patient with that ID does not exist in the system." {
		t.Errorf("Unexpected message: %v", resp["message"])
	}
}

func TestHandlerGet_LoadFailure(t *testing.T) {
	service := &mockService{
		getFunc: func(ctx context.Context, id int64) (*Patient, error) {
			return nil, errors.New("engine exploded")
		},
	}
	handler := NewHandler(service, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("GET", "/patients/42", nil)
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "An error occurred while loading data." {
		t.Errorf("Unexpected message: %v", resp["message"])
	}
}

func TestHandlerGet_DetailWithComplaints(t *testing.T) {
	service := &mockService{
		getFunc: func(ctx context.Context, id int64) (*Patient, error) {
			return &Patient{ID: id, Name: "Jane Doe", CreatedAt: "2024-01-01 00:00:00"}, nil
		},
	}
	lister := &mockComplaintLister{
		listFunc: func(ctx context.Context, patientID int64) ([]complaint.Complaint, error) {
			return []complaint.Complaint{
				{ID: 2, PatientID: patientID, Date: "2024-06-01"},
				{ID: 1, PatientID: patientID, Date: "2024-01-01"},
			}, nil
		},
	}
	handler := NewHandler(service, lister, nil)

	req := httptest.NewRequest("GET", "/patients/3", nil)
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp PatientDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Patient == nil || resp.Patient.Name != "Jane Doe" {
		t.Errorf("Unexpected patient: %+v", resp.Patient)
	}
	if len(resp.Complaints) != 2 {
		t.Errorf("Expected 2 complaints, got %d", len(resp.Complaints))
	}
}

func TestHandlerGet_InvalidID(t *testing.T) {
	handler := NewHandler(&mockService{}, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("GET", "/patients/abc", nil)
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestHandlerList_PassesSearch(t *testing.T) {
	var gotSearch string
	service := &mockService{
		listFunc: func(ctx context.Context, search string) ([]Patient, error) {
			gotSearch = search
			return []Patient{{ID: 1, Name: "Jane"}}, nil
		},
	}
	handler := NewHandler(service, &mockComplaintLister{}, nil)

	req := httptest.NewRequest("GET", "/patients?search=Ja", nil)
	rec := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotSearch != "Ja" {
		t.Errorf("Expected search 'Ja', got %q", gotSearch)
	}
	var resp PatientListResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("Expected total 1, got %d", resp.Total)
	}
}

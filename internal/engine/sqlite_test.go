package engine_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/medblocks/records-service/internal/complaint"
	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/engine"
	"github.com/medblocks/records-service/internal/patient"
)

// These tests run the full storage path against a real store file in a
// temp dir: engine open with its pragmas, the schema bootstrap, and the
// repositories on top.

func newTestProvider(t *testing.T, path string) *db.Provider {
	t.Helper()
	provider := db.NewProvider(func() (engine.Engine, error) {
		return engine.Open(path)
	})
	t.Cleanup(func() { provider.Close() })
	return provider
}

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := engine.Open(""); err == nil {
		t.Fatal("Expected error for empty store path")
	}
}

func TestInsertThenRead(t *testing.T) {
	provider := newTestProvider(t, filepath.Join(t.TempDir(), "records.db"))
	repo := patient.NewRepository(provider)

	email := "jane@example.com"
	req := patient.RegisterPatientRequest{
		Name:  "Jane Doe",
		Phone: "555-1234",
		DOB:   "1990-01-01",
		Sex:   "female",
		Email: &email,
	}

	id, err := repo.Insert(context.Background(), req)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected a positive generated id, got %d", id)
	}

	p, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if p == nil {
		t.Fatal("Expected the inserted patient, got nil")
	}
	if p.Name != "Jane Doe" || p.Phone != "555-1234" || p.Sex != "female" {
		t.Errorf("Unexpected patient: %+v", p)
	}
	if p.Address != nil {
		t.Errorf("Expected nil address, got %v", *p.Address)
	}
	if p.Email == nil || *p.Email != email {
		t.Errorf("Unexpected email: %v", p.Email)
	}
	if p.CreatedAt == "" {
		t.Error("Expected created_at to be populated by the engine")
	}
}

func TestForeignKeyEnforced(t *testing.T) {
	provider := newTestProvider(t, filepath.Join(t.TempDir(), "records.db"))
	patients := patient.NewRepository(provider)
	complaints := complaint.NewRepository(provider)

	req := complaint.FileComplaintRequest{
		Date:      "2024-06-01",
		Complaint: "Headache",
		Doctor:    "Dr. Smith",
		Medicine:  "Ibuprofen",
	}

	err := complaints.Insert(context.Background(), 9999, req)
	var insertErr *db.InsertError
	if !errors.As(err, &insertErr) {
		t.Fatalf("Expected *db.InsertError for unknown patient, got %v", err)
	}

	id, err := patients.Insert(context.Background(), patient.RegisterPatientRequest{
		Name: "John Smith", Phone: "555", DOB: "1980-02-02", Sex: "male",
	})
	if err != nil {
		t.Fatalf("Insert patient failed: %v", err)
	}

	if err := complaints.Insert(context.Background(), id, req); err != nil {
		t.Fatalf("Insert complaint for existing patient failed: %v", err)
	}

	list, err := complaints.ListByPatientID(context.Background(), id)
	if err != nil {
		t.Fatalf("ListByPatientID failed: %v", err)
	}
	if len(list) != 1 || list[0].Complaint != "Headache" {
		t.Fatalf("Unexpected complaints: %+v", list)
	}
}

func TestBootstrapSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	first := newTestProvider(t, path)
	repo := patient.NewRepository(first)
	id, err := repo.Insert(context.Background(), patient.RegisterPatientRequest{
		Name: "Jane Doe", Phone: "555", DOB: "1990-01-01", Sex: "female",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// A fresh provider re-runs the bootstrap against the same store;
	// create-if-absent must leave the existing data untouched.
	second := newTestProvider(t, path)
	p, err := patient.NewRepository(second).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if p == nil || p.Name != "Jane Doe" {
		t.Fatalf("Expected the patient to survive a reopen, got %+v", p)
	}
}

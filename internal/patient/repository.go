package patient

import (
	"context"
	"fmt"

	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/engine"
)

// EngineProvider hands out the shared storage engine handle.
type EngineProvider interface {
	Get(ctx context.Context) (engine.Engine, error)
}

type Repository struct {
	provider EngineProvider
}

func NewRepository(provider EngineProvider) *Repository {
	return &Repository{provider: provider}
}

const patientColumns = "id, name, phone, address, email, dob, sex, height, weight, created_at"

// Insert stores a new patient and returns the engine-generated id.
// Optional fields are bound as NULL, never as empty strings.
func (r *Repository) Insert(ctx context.Context, req RegisterPatientRequest) (int64, error) {
	eng, err := r.provider.Get(ctx)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO patients (name, phone, address, email, dob, sex, height, weight)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	rows, err := eng.Query(ctx, query,
		req.Name,
		req.Phone,
		nullable(req.Address),
		nullable(req.Email),
		req.DOB,
		req.Sex,
		nullable(req.Height),
		nullable(req.Weight),
	)
	if err != nil {
		return 0, &db.InsertError{Table: "patients", Err: err}
	}
	if len(rows) == 0 {
		return 0, db.ErrNoIDReturned
	}

	id, err := rows[0].Int("id")
	if err != nil {
		return 0, fmt.Errorf("malformed insert result: %w", err)
	}
	return id, nil
}

// ListAll fetches every patient. Result order is whatever the engine
// returns; callers needing order sort themselves.
func (r *Repository) ListAll(ctx context.Context) ([]Patient, error) {
	eng, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := eng.Query(ctx, "SELECT "+patientColumns+" FROM patients")
	if err != nil {
		return nil, fmt.Errorf("failed to query patients: %w", err)
	}

	patients := make([]Patient, 0, len(rows))
	for _, row := range rows {
		p, err := narrowPatient(row)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, nil
}

// GetByID fetches one patient by primary key. A missing row is a valid
// absent result, returned as (nil, nil), never as an error.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Patient, error) {
	eng, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := eng.Query(ctx, "SELECT "+patientColumns+" FROM patients WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	p, err := narrowPatient(rows[0])
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// narrowPatient validates a loose engine row into the strict Patient
// shape. A missing required field is an engine contract violation.
func narrowPatient(row engine.Row) (Patient, error) {
	var p Patient
	var err error

	if p.ID, err = row.Int("id"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	if p.Name, err = row.Text("name"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	if p.Phone, err = row.Text("phone"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	if p.DOB, err = row.Text("dob"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	if p.Sex, err = row.Text("sex"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	if p.CreatedAt, err = row.Text("created_at"); err != nil {
		return Patient{}, fmt.Errorf("malformed patient row: %w", err)
	}
	p.Address = row.OptionalText("address")
	p.Email = row.OptionalText("email")
	p.Height = row.OptionalReal("height")
	p.Weight = row.OptionalReal("weight")

	return p, nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

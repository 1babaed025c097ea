package complaint

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

// Insert files a complaint for a patient. The engine is the sole arbiter
// of referential integrity: an unknown patient_id fails here with an
// InsertError rather than being checked up front.
func (r *Repository) Insert(ctx context.Context, patientID int64, req FileComplaintRequest) error {
	eng, err := r.provider.Get(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO complaints (patient_id, date, complaint, doctor, medicine)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = eng.Query(ctx, query, patientID, req.Date, req.Complaint, req.Doctor, req.Medicine)
	if err != nil {
		return &db.InsertError{Table: "complaints", Err: err}
	}
	return nil
}

// ListByPatientID fetches all complaints for one patient in engine
// order. Display ordering is the service's concern.
func (r *Repository) ListByPatientID(ctx context.Context, patientID int64) ([]Complaint, error) {
	eng, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, patient_id, date, complaint, doctor, medicine
		FROM complaints
		WHERE patient_id = ?
	`

	rows, err := eng.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}

	complaints := make([]Complaint, 0, len(rows))
	for _, row := range rows {
		c, err := narrowComplaint(row)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, nil
}

func narrowComplaint(row engine.Row) (Complaint, error) {
	var c Complaint
	var err error

	if c.ID, err = row.Int("id"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	if c.PatientID, err = row.Int("patient_id"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	if c.Date, err = row.Text("date"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	if c.Complaint, err = row.Text("complaint"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	if c.Doctor, err = row.Text("doctor"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	if c.Medicine, err = row.Text("medicine"); err != nil {
		return Complaint{}, fmt.Errorf("malformed complaint row: %w", err)
	}
	return c, nil
}

package complaint

import "context"

// RepositoryInterface defines the contract for complaint data access
type RepositoryInterface interface {
	Insert(ctx context.Context, patientID int64, req FileComplaintRequest) error
	ListByPatientID(ctx context.Context, patientID int64) ([]Complaint, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

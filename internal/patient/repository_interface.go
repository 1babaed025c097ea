package patient

import "context"

// RepositoryInterface defines the contract for patient data access
type RepositoryInterface interface {
	Insert(ctx context.Context, req RegisterPatientRequest) (int64, error)
	ListAll(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)

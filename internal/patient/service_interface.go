package patient

import "context"

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	Register(ctx context.Context, req RegisterPatientRequest) (int64, error)
	List(ctx context.Context, search string) ([]Patient, error)
	Get(ctx context.Context, id int64) (*Patient, error)
}

var _ ServiceInterface = (*Service)(nil)

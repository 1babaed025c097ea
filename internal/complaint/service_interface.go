package complaint

import "context"

// ServiceInterface defines the contract for complaint business logic operations
type ServiceInterface interface {
	File(ctx context.Context, patientID int64, req FileComplaintRequest) error
	ListByPatient(ctx context.Context, patientID int64) ([]Complaint, error)
}

var _ ServiceInterface = (*Service)(nil)

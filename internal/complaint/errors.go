package complaint

import "errors"

var (
	ErrMissingDate      = errors.New("date is required")
	ErrMissingComplaint = errors.New("complaint is required")
	ErrMissingDoctor    = errors.New("doctor is required")
	ErrMissingMedicine  = errors.New("medicine is required")
)

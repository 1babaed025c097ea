package patient

import "errors"

var (
	ErrMissingName  = errors.New("name is required")
	ErrMissingPhone = errors.New("phone is required")
	ErrMissingDOB   = errors.New("date of birth is required")
	ErrMissingSex   = errors.New("sex is required")
	ErrInvalidSex   = errors.New("sex must be male, female or other")
)

package patient

// Patient is a registered patient row. id and created_at are generated
// by the storage engine; optional fields are nil when absent.
type Patient struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Address   *string  `json:"address,omitempty"`
	Email     *string  `json:"email,omitempty"`
	DOB       string   `json:"dob"` // Format: YYYY-MM-DD
	Sex       string   `json:"sex"` // male, female or other
	Height    *float64 `json:"height,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// RegisterPatientRequest represents the request to register a new patient
type RegisterPatientRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address *string  `json:"address,omitempty"`
	Email   *string  `json:"email,omitempty"`
	DOB     string   `json:"dob"`
	Sex     string   `json:"sex"`
	Height  *float64 `json:"height,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
}

package complaint

// Complaint is one medical-history entry for a patient. Rows are
// insert-only; there is no created_at, display ordering uses date.
type Complaint struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	Date      string `json:"date"` // Format: YYYY-MM-DD
	Complaint string `json:"complaint"`
	Doctor    string `json:"doctor"`
	Medicine  string `json:"medicine"`
}

// FileComplaintRequest represents the request to file a complaint for a
// patient. The patient id comes from the route, not the body.
type FileComplaintRequest struct {
	Date      string `json:"date"`
	Complaint string `json:"complaint"`
	Doctor    string `json:"doctor"`
	Medicine  string `json:"medicine"`
}

package model

// Visit is a scheduled or completed site visit by a technician.
type Visit struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	TechnicianID string `json:"technicianId"`

	// Date is the visit date in YYYY-MM-DD form.
	Date string `json:"date"`

	Purpose string `json:"purpose"`
}

package model

// MaintenanceAlert is a reminder that a client's equipment is due for
// preventive maintenance.
type MaintenanceAlert struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`

	// Equipment describes the installed equipment the alert covers.
	Equipment string `json:"equipment"`

	// NextDue is the next service date in YYYY-MM-DD form.
	NextDue string `json:"nextDue"`

	Notes string `json:"notes,omitempty"`
}

package model

// ExecutionReport documents work performed during a site visit.
// Reports are immutable once created.
type ExecutionReport struct {
	ID string `json:"id"`

	// VisitID references the visit the report documents.
	VisitID string `json:"visitId"`

	// ClientID is copied from the referenced visit at creation time.
	ClientID string `json:"clientId"`

	// QuoteID optionally links the report to a quote. The quote must be
	// Approved when selected; the link is not re-validated later.
	QuoteID string `json:"quoteId,omitempty"`

	// Date is the report date in YYYY-MM-DD form.
	Date string `json:"date"`

	Activities          string `json:"activities"`
	EquipmentIntervened string `json:"equipmentIntervened"`
	Observations        string `json:"observations"`
	WarrantyMonths      int    `json:"warrantyMonths"`
}

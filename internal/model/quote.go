package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the closed set of quote lifecycle states.
type QuoteStatus string

const (
	StatusDraft    QuoteStatus = "Draft"
	StatusSent     QuoteStatus = "Sent"
	StatusApproved QuoteStatus = "Approved"
	StatusRejected QuoteStatus = "Rejected"
)

// ParseQuoteStatus validates a raw status value.
func ParseQuoteStatus(s string) (QuoteStatus, error) {
	switch QuoteStatus(s) {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return QuoteStatus(s), nil
	}
	return "", fmt.Errorf("unknown quote status %q", s)
}

// ServiceType identifies the kind of service a quote covers.
type ServiceType string

const (
	ServiceSale         ServiceType = "Venta"
	ServiceMaintenance  ServiceType = "Mantenimiento"
	ServiceInstallation ServiceType = "Instalación"
)

// ServiceTypes lists the selectable service types in display order.
var ServiceTypes = []ServiceType{ServiceSale, ServiceMaintenance, ServiceInstallation}

// ParseServiceType validates a raw service type value.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case ServiceSale, ServiceMaintenance, ServiceInstallation:
		return ServiceType(s), nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

// QuoteItem is a single line of a quote. Items are owned exclusively by
// their parent quote and keep insertion order through every round-trip.
type QuoteItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Quote is a commercial offer for a client.
//
// Totals are computed once at creation and frozen; there is no item edit
// operation, so nothing ever recomputes them.
type Quote struct {
	// ID is a UUID and the only identity used for sync and lookups.
	ID string `json:"id"`

	// Number is the human-readable document number ("COT-104"). It is
	// derived from the local quote count at creation and is display-only:
	// it can repeat after deletions or across devices.
	Number string `json:"number"`

	// ClientID references a Client. Not enforced on client deletion.
	ClientID string `json:"clientId"`

	// Date is the issue date in YYYY-MM-DD form.
	Date string `json:"date"`

	// ServiceTypes is a non-empty set of covered service kinds.
	ServiceTypes []ServiceType `json:"serviceTypes"`

	// Items is the ordered line-item sequence.
	Items []QuoteItem `json:"items"`

	LaborCost decimal.Decimal `json:"laborCost"`

	// Frozen totals, computed by internal/finance at creation.
	SubtotalItems   decimal.Decimal `json:"subtotalItems"`
	SubtotalGeneral decimal.Decimal `json:"subtotalGeneral"`
	IVA             decimal.Decimal `json:"iva"`
	Total           decimal.Decimal `json:"total"`

	Status QuoteStatus `json:"status"`

	Observations         string `json:"observations"`
	CommercialConditions string `json:"commercialConditions"`
}

package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitec-sas/gestion/internal/model"
	"github.com/sitec-sas/gestion/internal/pdf"
)

func TestQuoteDocument(t *testing.T) {
	client := model.Client{
		ID: "c1", Name: "Parque Industrial La Estrella",
		NIT: "900777888-2", Phone: "3001234567", ContactPerson: "Marta Ruiz",
	}
	q := model.Quote{
		ID: "q1", Number: "COT-105", ClientID: "c1", Date: "2026-08-31",
		ServiceTypes: []model.ServiceType{model.ServiceInstallation, model.ServiceMaintenance},
		Items: []model.QuoteItem{
			{ID: "i1", Description: "Cámara Domo 4MP", Quantity: 4, UnitPrice: decimal.NewFromInt(180000)},
			{ID: "i2", Description: "Switch PoE 8 puertos", Quantity: 1, UnitPrice: decimal.NewFromInt(350000)},
		},
		LaborCost:            decimal.NewFromInt(200000),
		SubtotalItems:        decimal.NewFromInt(1070000),
		SubtotalGeneral:      decimal.NewFromInt(1270000),
		IVA:                  decimal.NewFromInt(241300),
		Total:                decimal.NewFromInt(1511300),
		Status:               model.StatusSent,
		Observations:         model.DefaultQuoteObservations,
		CommercialConditions: model.DefaultCommercialConditions,
	}

	doc, err := pdf.QuoteDocument(q, client)
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	// A well-formed PDF starts with the version marker.
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestQuoteDocumentNoItems(t *testing.T) {
	q := model.Quote{ID: "q1", Number: "COT-101", Date: "2026-08-31", Status: model.StatusDraft}

	doc, err := pdf.QuoteDocument(q, model.Client{Name: "Cliente sin ítems"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

// Package finance computes quote totals. All arithmetic is exact decimal
// arithmetic; nothing here rounds. Display formatting (whole-peso output)
// is a presentation concern and lives elsewhere.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/sitec-sas/gestion/internal/model"
)

// IVARate is the fixed 19% Colombian VAT rate applied to every quote.
var IVARate = decimal.NewFromFloat(0.19)

// Totals is the frozen financial summary stored on a quote at creation.
type Totals struct {
	SubtotalItems   decimal.Decimal
	SubtotalGeneral decimal.Decimal
	IVA             decimal.Decimal
	Total           decimal.Decimal
}

// LineTotal returns quantity * unit price for a single item. Negative
// quantities or prices are not rejected here; validation belongs to the
// form layer and plain arithmetic is the contract.
func LineTotal(item model.QuoteItem) decimal.Decimal {
	return decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice)
}

// ItemsSubtotal sums the line totals of an item sequence.
func ItemsSubtotal(items []model.QuoteItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it))
	}
	return sum
}

// ComputeTotals derives the full financial summary from the items and the
// labor cost:
//
//	subtotalGeneral = subtotalItems + laborCost
//	iva             = subtotalGeneral * 0.19
//	total           = subtotalGeneral + iva
//
// The computation is deterministic: identical inputs always produce
// identical outputs.
func ComputeTotals(items []model.QuoteItem, laborCost decimal.Decimal) Totals {
	subtotalItems := ItemsSubtotal(items)
	subtotalGeneral := subtotalItems.Add(laborCost)
	iva := subtotalGeneral.Mul(IVARate)
	return Totals{
		SubtotalItems:   subtotalItems,
		SubtotalGeneral: subtotalGeneral,
		IVA:             iva,
		Total:           subtotalGeneral.Add(iva),
	}
}

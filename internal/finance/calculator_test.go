package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitec-sas/gestion/internal/model"
)

func item(qty int, price int64) model.QuoteItem {
	return model.QuoteItem{Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
}

func TestComputeTotals(t *testing.T) {
	items := []model.QuoteItem{item(2, 100000), item(1, 50000)}
	labor := decimal.NewFromInt(30000)

	got := ComputeTotals(items, labor)

	assert.True(t, got.SubtotalItems.Equal(decimal.NewFromInt(250000)), "subtotalItems = %s", got.SubtotalItems)
	assert.True(t, got.SubtotalGeneral.Equal(decimal.NewFromInt(280000)), "subtotalGeneral = %s", got.SubtotalGeneral)
	assert.True(t, got.IVA.Equal(decimal.NewFromInt(53200)), "iva = %s", got.IVA)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(333200)), "total = %s", got.Total)
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := []model.QuoteItem{
		item(3, 123457),
		{Quantity: 7, UnitPrice: decimal.RequireFromString("99.99")},
	}
	labor := decimal.RequireFromString("15000.5")

	first := ComputeTotals(items, labor)
	second := ComputeTotals(items, labor)

	require.Equal(t, first.SubtotalItems.String(), second.SubtotalItems.String())
	require.Equal(t, first.SubtotalGeneral.String(), second.SubtotalGeneral.String())
	require.Equal(t, first.IVA.String(), second.IVA.String())
	require.Equal(t, first.Total.String(), second.Total.String())
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, decimal.Zero)

	assert.True(t, got.SubtotalItems.IsZero())
	assert.True(t, got.SubtotalGeneral.IsZero())
	assert.True(t, got.IVA.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestComputeTotalsLaborOnly(t *testing.T) {
	got := ComputeTotals(nil, decimal.NewFromInt(100000))

	assert.True(t, got.SubtotalItems.IsZero())
	assert.True(t, got.SubtotalGeneral.Equal(decimal.NewFromInt(100000)))
	assert.True(t, got.IVA.Equal(decimal.NewFromInt(19000)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(119000)))
}

func TestComputeTotalsNegativeInputsFlowThrough(t *testing.T) {
	// Negative values are not rejected by this layer; they produce a
	// plain arithmetic (negative) result.
	items := []model.QuoteItem{item(-2, 100000)}

	got := ComputeTotals(items, decimal.Zero)

	assert.True(t, got.SubtotalItems.Equal(decimal.NewFromInt(-200000)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(-238000)))
}

func TestLineTotal(t *testing.T) {
	it := model.QuoteItem{Quantity: 4, UnitPrice: decimal.RequireFromString("2500.25")}
	assert.True(t, LineTotal(it).Equal(decimal.RequireFromString("10001")))
}

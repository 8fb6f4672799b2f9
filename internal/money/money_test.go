package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sitec-sas/gestion/internal/money"
)

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "$ 0"},
		{950, "$ 950"},
		{53200, "$ 53.200"},
		{333200, "$ 333.200"},
		{1250000, "$ 1.250.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.FormatCOP(decimal.NewFromInt(tc.amount)), "amount %d", tc.amount)
	}
}

func TestFormatCOPTruncatesCents(t *testing.T) {
	got := money.FormatCOP(decimal.NewFromFloat(333200.75))
	assert.Equal(t, "$ 333.200", got)
}

// Package money formats Colombian peso amounts for display. Formatting
// truncates to whole pesos for output only; stored values keep their
// full precision.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esCO = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount the way the es-CO locale writes currency,
// without decimal digits: $ 333.200.
func FormatCOP(d decimal.Decimal) string {
	whole := d.Truncate(0).IntPart()
	return esCO.Sprintf("$ %v", number.Decimal(whole))
}

// Package money formatea importes en rupias para reportes y pantallas.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah devuelve el importe con separadores indonesios, p. ej. "Rp 65.000,00".
func FormatRupiah(d decimal.Decimal) string {
	return printer.Sprintf("Rp %.2f", d.Round(2).InexactFloat64())
}

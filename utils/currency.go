package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value as Brazilian real with pt-BR separators,
// e.g. "R$ 1.234,56".
func FormatBRL(value decimal.Decimal) string {
	f, _ := value.Float64()
	return brPrinter.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

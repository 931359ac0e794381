package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatFunc renders an amount in a display currency.
type FormatFunc func(amount float64) string

// Formatter returns a formatter for the given ISO 4217 code. Unknown codes
// fall back to a plain dollar rendering rather than failing, mirroring the
// configured-currency contract: formatting is best effort, never an error.
func Formatter(code string) FormatFunc {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		}
	}
	p := message.NewPrinter(language.English)
	return func(amount float64) string {
		return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
	}
}

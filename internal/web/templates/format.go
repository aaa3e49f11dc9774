package templates

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a cent amount as a grouped dollar string, e.g.
// 125000 -> "$1,250.00".
func FormatAmount(cents int64) string {
	return amountPrinter.Sprintf("$%.2f", float64(cents)/100)
}

// AmountInputValue renders a cent amount as the plain dollar value used to
// prefill the amount input, e.g. 125000 -> "1250.00". No locale grouping:
// the value round-trips through the form parser.
func AmountInputValue(cents int64) string {
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%02d", whole, frac)
}

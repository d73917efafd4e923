package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var english = message.NewPrinter(language.English)

// FormatMoney renders a dollar amount with thousands separators,
// e.g. 52340.5 -> "$52,340.50".
func FormatMoney(v float64) string {
	if v < 0 {
		return english.Sprintf("-$%.2f", -v)
	}
	return english.Sprintf("$%.2f", v)
}

// FormatPercent renders a signed percentage with two decimals,
// e.g. 3.417 -> "+3.42%".
func FormatPercent(v float64) string {
	return english.Sprintf("%+.2f%%", v)
}

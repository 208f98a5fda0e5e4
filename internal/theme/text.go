package theme

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPriceLine renders a per-meal price badge, with digit grouping for the
// given locale (en-IN groups lakhs/crores). Empty unless the price is a
// finite number greater than zero: a free or unpriced plan shows no badge.
func FormatPriceLine(price *float64, locale string) string {
	if price == nil {
		return ""
	}
	p := *price
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("₹%v / meal", number.Decimal(p))
}

// SanitizeDescription trims whitespace; a blank description becomes empty so
// callers can drop the paragraph entirely.
func SanitizeDescription(value string) string {
	return strings.TrimSpace(value)
}

package utils

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback amounts for malformed budget strings. Substituting these instead
// of failing is part of the engine contract.
const (
	DefaultDailyBudget = 5000
	DefaultTripBudget  = 15000
)

var rupeePrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount with the ₹ symbol and comma grouping,
// e.g. 57500 -> "₹57,500".
func FormatRupees(amount int) string {
	return rupeePrinter.Sprintf("₹%d", amount)
}

// ParseDailyBudget parses catalog budget strings like "₹8,000-15,000 per day"
// (midpoint of the range) or "₹5,000 per day" (single value). ok is false
// when no number could be extracted; callers substitute a fixed default
// rather than failing.
func ParseDailyBudget(s string) (amount int, ok bool) {
	cleaned := strings.ReplaceAll(s, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " per day", "")

	if strings.Contains(cleaned, "-") {
		parts := strings.SplitN(cleaned, "-", 2)
		low, okLow := digitsToInt(parts[0])
		high, okHigh := digitsToInt(parts[1])
		if !okLow || !okHigh {
			return 0, false
		}
		return (low + high) / 2, true
	}

	return digitsToInt(cleaned)
}

// ParseRupees extracts the numeric amount from a display string produced by
// FormatRupees, e.g. "₹57,500" -> 57500.
func ParseRupees(s string) (amount int, ok bool) {
	return digitsToInt(s)
}

func digitsToInt(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

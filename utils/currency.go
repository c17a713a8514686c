package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount as Rand for receipts and displays.
// Rounding to two decimals happens only here; accumulation elsewhere stays
// unrounded so per-line rounding errors cannot compound.
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return "R " + sign + strings.Join(groups, ",") + "." + decimalPart
}

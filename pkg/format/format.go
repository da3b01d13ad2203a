// Package format renders balance amounts for display.
package format

import (
	"strconv"
	"strings"
)

// Balance formats an amount with amount-dependent precision:
// 6 decimals below 0.001, 4 decimals below 1, 2 decimals otherwise.
// Trailing zeros and a trailing decimal point are stripped, so a zero
// amount always renders as "0", never "0.0".
func Balance(amount float64) string {
	if amount == 0 {
		return "0"
	}

	var prec int
	switch {
	case amount < 0.001:
		prec = 6
	case amount < 1:
		prec = 4
	default:
		prec = 2
	}

	s := strconv.FormatFloat(amount, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

package utils

import (
	"strconv"
	"strings"
)

// FormatMoney renders an amount with thousands separators and two decimals,
// e.g. 12345.5 -> "12,345.50". This is the receipt/report display format.
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAmount renders an amount in its shortest decimal form, e.g.
// 90.0 -> "90", 90.5 -> "90.5". Used in durable sale records where the
// display precision is not fixed.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// LeadingAmount extracts the numeric run at the start of s (digits, dots
// and grouping commas) and parses it as a float. Returns false when s does
// not begin with a number.
func LeadingAmount(s string) (float64, bool) {
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || c == ',' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	cleaned := strings.ReplaceAll(s[:end], ",", "")
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// Package currency converts between raw numeric amounts and their
// pt-BR display form (dot thousands separator, comma decimal separator,
// two fraction digits).
package currency

import (
	"math"
	"strconv"
	"strings"
)

// FormatInput backs a live-typing currency field: it is called on every
// keystroke, treats whatever digits survive stripping as integer cents
// and re-renders them. Re-entering an already formatted string digit by
// digit therefore yields the same result (idempotent under the mask).
//
// Examples:
//
//	FormatInput("123456")   -> "1.234,56"
//	FormatInput("1.234,56") -> "1.234,56"
//	FormatInput("abc")      -> ""
func FormatInput(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	// Empty after stripping means "untouched", not zero.
	if digits.Len() == 0 {
		return ""
	}

	cents, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return ""
	}

	return formatCents(cents)
}

// ParseInput reverses FormatInput: thousands separators are dropped, the
// decimal comma becomes a machine decimal point and the result is parsed
// as a float. Malformed input yields NaN; callers validate before
// persisting.
func ParseInput(formatted string) float64 {
	s := strings.ReplaceAll(formatted, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Format renders a one-shot display amount with the currency symbol,
// e.g. Format(1234.5) -> "R$ 1.234,50" and Format(-500) -> "-R$ 500,00".
func Format(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	cents := int64(math.Round(value * 100))
	return sign + "R$ " + formatCents(cents)
}

func formatCents(cents int64) string {
	whole := cents / 100
	frac := cents % 100

	return groupThousands(strconv.FormatInt(whole, 10)) + "," + pad2(frac)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

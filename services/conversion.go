package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrBadAmount = errors.New("amount is not a number")

// Convert applies rate to amount and rounds to two decimal places.
func Convert(amount, rate float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2)
}

// ParseAmount parses user-entered amounts, tolerating grouping commas.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, ErrBadAmount
	}

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrBadAmount
	}

	return num, nil
}

// FormatNumber renders d with thousands separators in the integer part
// and no trailing fraction zeros: 15279 -> "15,279", 152.79 -> "152.79".
func FormatNumber(d decimal.Decimal) string {
	s := d.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}

	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && (!neg || b.Len() > 1) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}

// FormatMoney prefixes the symbol: FormatMoney("¥", 15279) -> "¥15,279".
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + FormatNumber(d)
}

// FormatRate renders a unit rate for display, capped at three decimal
// places like the rest of the formatted numbers.
func FormatRate(rate float64) string {
	return FormatNumber(decimal.NewFromFloat(rate).Round(3))
}

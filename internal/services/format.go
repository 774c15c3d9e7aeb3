package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// formatSigned renders v with two decimals and an explicit sign; anything that
// rounds to zero is "+0.00".
func formatSigned(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.Sign() < 0 {
		return d.StringFixed(2)
	}
	return "+" + d.Abs().StringFixed(2)
}

func formatPercent(v float64) string {
	return formatSigned(v) + "%"
}

// formatUSD renders a dollar price with thousands separators. Sub-dollar prices
// keep up to six decimals so small-cap tokens do not collapse to $0.00.
func formatUSD(v float64) string {
	d := decimal.NewFromFloat(v)
	var s string
	if d.Abs().LessThan(decimal.NewFromInt(1)) && !d.IsZero() {
		s = d.StringFixed(6)
		s = strings.TrimRight(s, "0")
		if i := strings.IndexByte(s, '.'); len(s)-i-1 < 2 {
			s += strings.Repeat("0", 2-(len(s)-i-1))
		}
	} else {
		s = d.StringFixed(2)
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(intPart) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

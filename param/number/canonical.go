package number

import (
	"fmt"
	"strings"
)

// Canonicalize rewrites a locale formatted number into a form accepted by
// arbitrary precision parsers: digits, an optional leading '-' and at most
// one '.' as decimal point. Grouping punctuation ('.', ',' and the locale
// grouping separator) outside the decimal point position is dropped.
// More than one decimal separator fails with ErrMultipleDecimalPoints.
func Canonicalize(text string, symbols Symbols) (string, error) {
	if symbols.Decimal == 0 {
		symbols.Decimal = Neutral.Decimal
	}
	if symbols.Minus == 0 {
		symbols.Minus = Neutral.Minus
	}
	value := strings.TrimSpace(text)
	decimal := string(symbols.Decimal)
	last := strings.LastIndex(value, decimal)
	if first := strings.Index(value, decimal); first != last {
		return "", fmt.Errorf("%w: %q", ErrMultipleDecimalPoints, text)
	}

	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == '.' || r == ',' || (symbols.Grouping != 0 && symbols.isGrouping(r)) {
				return -1
			}
			return r
		}, s)
	}

	builder := strings.Builder{}
	builder.Grow(len(value))
	if last != -1 {
		builder.WriteString(strip(value[:last]))
		builder.WriteByte('.')
		builder.WriteString(strip(value[last+len(decimal):]))
	} else {
		builder.WriteString(strip(value))
	}

	ret := builder.String()
	minus := string(symbols.Minus)
	if symbols.Minus != '-' && strings.HasPrefix(ret, minus) {
		ret = "-" + ret[len(minus):]
	}
	return ret, nil
}

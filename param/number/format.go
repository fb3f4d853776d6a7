package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrUnparseable indicates the text does not start with a number.
	ErrUnparseable = errors.New("unparseable number")

	// ErrMultipleDecimalPoints indicates more than one decimal separator.
	ErrMultipleDecimalPoints = errors.New("invalid format, more than one decimal point has been found")
)

// Format parses locale formatted numbers. A Format keeps a scratch buffer
// that Parse mutates, so one instance must not be shared by concurrent
// callers; use Clone or a Cache.
type Format struct {
	locale  language.Tag
	symbols Symbols
	buf     []byte
}

// NewFormat creates a format for the supplied locale ("" means English).
func NewFormat(locale string) (*Format, error) {
	symbols, tag, err := SymbolsFor(locale)
	if err != nil {
		return nil, err
	}
	return &Format{locale: tag, symbols: symbols}, nil
}

// NewFormatWithSymbols creates a format with explicit symbols.
func NewFormatWithSymbols(symbols Symbols) *Format {
	return &Format{locale: language.Und, symbols: symbols}
}

// Locale returns the format locale.
func (f *Format) Locale() language.Tag { return f.locale }

// Symbols returns the number punctuation used by the format.
func (f *Format) Symbols() Symbols { return f.symbols }

// Clone returns an independent copy with its own scratch buffer.
func (f *Format) Clone() *Format {
	return &Format{locale: f.locale, symbols: f.symbols}
}

// Parse reads the longest numeric prefix of text. Grouping separators in the
// integer part are skipped, the locale decimal separator and minus sign are
// honoured, and an optional exponent is read. Text with no leading digits
// fails with ErrUnparseable.
func (f *Format) Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	f.buf = f.buf[:0]
	runes := []rune(s)
	i := 0
	if i < len(runes) && f.symbols.isMinus(runes[i]) {
		f.buf = append(f.buf, '-')
		i++
	}
	digits, fraction, exponent := 0, false, false
	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			f.buf = append(f.buf, byte(r))
			digits++
			continue
		case r == f.symbols.Decimal && !fraction:
			fraction = true
			f.buf = append(f.buf, '.')
			continue
		case f.symbols.isGrouping(r) && !fraction && digits > 0:
			continue
		case (r == 'E' || r == 'e') && digits > 0:
			if n := f.readExponent(runes[i+1:]); n > 0 {
				exponent = true
				i += n
			}
		}
		break
	}
	if digits == 0 {
		return Value{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	if f.buf[len(f.buf)-1] == '.' {
		f.buf = f.buf[:len(f.buf)-1]
		fraction = false
	}
	canonical := string(f.buf)
	if !fraction && !exponent {
		if v, err := strconv.ParseInt(canonical, 10, 64); err == nil {
			return Value{integral: true, i: v, text: canonical}, nil
		}
	}
	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrUnparseable, text, err)
	}
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 && !(v == 0 && math.Signbit(v)) {
		return Value{integral: true, i: int64(v), text: canonical}, nil
	}
	return Value{f: v, text: canonical}, nil
}

// readExponent appends an exponent (sign and digits) to the buffer and
// returns the number of runes consumed, 0 when runes do not form one.
func (f *Format) readExponent(runes []rune) int {
	j := 0
	sign := byte(0)
	if j < len(runes) && (runes[j] == '+' || f.symbols.isMinus(runes[j])) {
		if runes[j] != '+' {
			sign = '-'
		}
		j++
	}
	start := j
	for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
		j++
	}
	if j == start {
		return 0
	}
	f.buf = append(f.buf, 'e')
	if sign != 0 {
		f.buf = append(f.buf, sign)
	}
	for _, r := range runes[start:j] {
		f.buf = append(f.buf, byte(r))
	}
	return j
}

// Canonicalize rewrites locale formatted text into the neutral form using
// the format symbols.
func (f *Format) Canonicalize(text string) (string, error) {
	return Canonicalize(text, f.symbols)
}

// Value is a parsed number: an int64 when the text was integral and fits,
// a float64 otherwise. The canonical digits are kept for exact conversions.
type Value struct {
	integral bool
	i        int64
	f        float64
	text     string
}

// IsIntegral reports whether the value is held as an int64.
func (v Value) IsIntegral() bool { return v.integral }

// Int64 returns the value truncated toward zero, saturating at the int64
// bounds.
func (v Value) Int64() int64 {
	if v.integral {
		return v.i
	}
	switch {
	case math.IsNaN(v.f):
		return 0
	case v.f >= math.MaxInt64:
		return math.MaxInt64
	case v.f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v.f)
}

// Float64 returns the value as float64.
func (v Value) Float64() float64 {
	if v.integral {
		return float64(v.i)
	}
	return v.f
}

// Interface returns int64 or float64.
func (v Value) Interface() interface{} {
	if v.integral {
		return v.i
	}
	return v.f
}

// Text returns the canonical digits that were parsed.
func (v Value) Text() string { return v.text }

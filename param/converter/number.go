package converter

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"github.com/viant/paramconv/param/number"
	"github.com/viant/paramconv/param/types"
)

// Number converts to every numeric scalar id (see types.IsNumeric). Values
// are parsed with a locale aware number.Format and then narrowed or widened
// to the requested kind: integer kinds wrap like Go conversions, float text
// is truncated toward zero. uint and uint64 keep integers above
// math.MaxInt64 exactly. decimal.Decimal is built from canonicalized text
// so no floating point rounding takes place; big.Int uses the parsed integer
// digits; atomic kinds require strict integer text.
//
// The configured format is never parsed with directly: each execution
// (number.WithExecution) gets its own cached clone.
type Number struct {
	formats *number.Cache
}

// NewNumber creates a converter for the given format; nil means English.
func NewNumber(format *number.Format) *Number {
	if format == nil {
		format, _ = number.NewFormat("en")
	}
	return &Number{formats: number.NewCache(format)}
}

// NewNumberForLocale creates a converter for a BCP 47 locale.
func NewNumberForLocale(locale string) (*Number, error) {
	format, err := number.NewFormat(locale)
	if err != nil {
		return nil, err
	}
	return NewNumber(format), nil
}

func (c *Number) Name() string { return "Number" }

// Format returns the configured prototype format.
func (c *Number) Format() *number.Format { return c.formats.Prototype() }

// Release drops the format clone cached for the execution carried by ctx.
func (c *Number) Release(ctx context.Context) { c.formats.Release(ctx) }

func (c *Number) Accept(t *types.Type) bool {
	return t != nil && t.Kind() == types.KindScalar && types.IsNumeric(t.ID()) && unmarked(t)
}

func (c *Number) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	format := c.formats.Format(ctx)
	switch t.ID() {
	case types.AtomicInt32:
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		ret := &atomic.Int32{}
		ret.Store(int32(v))
		return ret, nil
	case types.AtomicInt64:
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		ret := &atomic.Int64{}
		ret.Store(v)
		return ret, nil
	case types.Decimal:
		canonical, err := format.Canonicalize(value)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		ret, err := decimal.NewFromString(canonical)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		return ret, nil
	}

	n, err := format.Parse(value)
	if err != nil {
		return nil, NewError("", value, t, err)
	}
	switch t.ID() {
	case types.Int8:
		return int8(n.Int64()), nil
	case types.Int16:
		return int16(n.Int64()), nil
	case types.Int32:
		return int32(n.Int64()), nil
	case types.Int:
		return int(n.Int64()), nil
	case types.Int64:
		return n.Int64(), nil
	case types.Uint8:
		return uint8(n.Int64()), nil
	case types.Uint16:
		return uint16(n.Int64()), nil
	case types.Uint32:
		return uint32(n.Int64()), nil
	case types.Uint:
		v, err := unsigned(n)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		return uint(v), nil
	case types.Uint64:
		v, err := unsigned(n)
		if err != nil {
			return nil, NewError("", value, t, err)
		}
		return v, nil
	case types.Float32:
		return float32(n.Float64()), nil
	case types.Float64:
		return n.Float64(), nil
	case types.BigInt:
		return bigInt(n), nil
	}
	return n.Interface(), nil
}

// unsigned reads integers above math.MaxInt64 from the parsed digits.
// Values inside the int64 range wrap like Go conversions; anything outside
// both the int64 and uint64 ranges is rejected.
func unsigned(n number.Value) (uint64, error) {
	if n.IsIntegral() {
		return uint64(n.Int64()), nil
	}
	ret := bigInt(n)
	switch {
	case ret.IsInt64():
		return uint64(ret.Int64()), nil
	case ret.IsUint64():
		return ret.Uint64(), nil
	}
	return 0, fmt.Errorf("%w: %s overflows uint64", strconv.ErrRange, n.Text())
}

// bigInt keeps every integer digit, unlike the int64 path.
func bigInt(n number.Value) *big.Int {
	text := n.Text()
	if n.IsIntegral() {
		return big.NewInt(n.Int64())
	}
	if !strings.ContainsAny(text, "eE") {
		if idx := strings.IndexByte(text, '.'); idx != -1 {
			text = text[:idx]
		}
		if ret, ok := new(big.Int).SetString(text, 10); ok {
			return ret
		}
	}
	ret, _ := new(big.Float).SetFloat64(n.Float64()).Int(nil)
	if ret == nil {
		return big.NewInt(n.Int64())
	}
	return ret
}

// NewNumberList returns a list converter for numeric elements.
func NewNumberList(format *number.Format, separator string) *List {
	return NewList(NewNumber(format), separator)
}

func (c *Number) String() string {
	return fmt.Sprintf("Number(%v)", c.Format().Locale())
}

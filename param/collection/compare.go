package collection

import (
	"cmp"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/paramconv/param/types"
)

// Compare orders two values of the same type: numbers, strings, booleans,
// times, big numbers and enumeration constants (by ordinal).
func Compare(a, b interface{}) (int, error) {
	switch x := a.(type) {
	case int8:
		if y, ok := b.(int8); ok {
			return cmp.Compare(x, y), nil
		}
	case int16:
		if y, ok := b.(int16); ok {
			return cmp.Compare(x, y), nil
		}
	case int32:
		if y, ok := b.(int32); ok {
			return cmp.Compare(x, y), nil
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y), nil
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y), nil
		}
	case uint8:
		if y, ok := b.(uint8); ok {
			return cmp.Compare(x, y), nil
		}
	case uint16:
		if y, ok := b.(uint16); ok {
			return cmp.Compare(x, y), nil
		}
	case uint32:
		if y, ok := b.(uint32); ok {
			return cmp.Compare(x, y), nil
		}
	case uint:
		if y, ok := b.(uint); ok {
			return cmp.Compare(x, y), nil
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return cmp.Compare(x, y), nil
		}
	case float32:
		if y, ok := b.(float32); ok {
			return cmp.Compare(x, y), nil
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y), nil
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			return cmp.Compare(boolRank(x), boolRank(y)), nil
		}
	case *big.Int:
		if y, ok := b.(*big.Int); ok {
			return x.Cmp(y), nil
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y), nil
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), nil
		}
	case types.Constant:
		if y, ok := b.(types.Constant); ok {
			return cmp.Compare(x.Ordinal, y.Ordinal), nil
		}
	default:
		return 0, fmt.Errorf("unordered element type %T", a)
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

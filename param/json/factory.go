package json

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/types"
)

var scalarTypes = map[string]reflect.Type{
	types.String:  reflect.TypeFor[string](),
	types.Bool:    reflect.TypeFor[bool](),
	types.Int8:    reflect.TypeFor[int8](),
	types.Int16:   reflect.TypeFor[int16](),
	types.Int32:   reflect.TypeFor[int32](),
	types.Int:     reflect.TypeFor[int](),
	types.Int64:   reflect.TypeFor[int64](),
	types.Uint8:   reflect.TypeFor[uint8](),
	types.Uint16:  reflect.TypeFor[uint16](),
	types.Uint32:  reflect.TypeFor[uint32](),
	types.Uint:    reflect.TypeFor[uint](),
	types.Uint64:  reflect.TypeFor[uint64](),
	types.Float32: reflect.TypeFor[float32](),
	types.Float64: reflect.TypeFor[float64](),
	types.BigInt:  reflect.TypeFor[*big.Int](),
	types.Decimal: reflect.TypeFor[decimal.Decimal](),
	types.Time:    reflect.TypeFor[time.Time](),
}

// Factory decodes JSON into the Go type a descriptor binds.
type Factory struct {
	loader converter.ResourceLoader
}

// NewFactory creates a decoder; loader may be nil when only literal JSON is
// used.
func NewFactory(loader converter.ResourceLoader) *Factory {
	return &Factory{loader: loader}
}

// Decode implements converter.JSONDecoder. Blank text decodes to nil.
func (f *Factory) Decode(ctx context.Context, text string, t *types.Type) (interface{}, error) {
	if !IsJSON(text) {
		if f.loader == nil {
			return nil, fmt.Errorf("no resource loader for json %q", strings.TrimSpace(text))
		}
		loaded, err := f.loader.LoadText(ctx, text)
		if err != nil {
			return nil, err
		}
		text = loaded
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	target := GoType(t)
	value := reflect.New(target)
	if err := json.Unmarshal([]byte(text), value.Interface()); err != nil {
		return nil, fmt.Errorf("failed to decode json into %v: %w", t, err)
	}
	return value.Elem().Interface(), nil
}

// IsJSON reports whether text is blank or delimited as a JSON array or
// object.
func IsJSON(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	return (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
}

// GoType returns the Go type values of t decode into: the bound type when
// present, a slice for parameterized descriptors, the natural Go type of
// known scalar ids and interface{} otherwise.
func GoType(t *types.Type) reflect.Type {
	if t == nil {
		return reflect.TypeFor[interface{}]()
	}
	if goType := t.GoType(); goType != nil {
		return goType
	}
	if t.Kind() == types.KindParameterized {
		return reflect.SliceOf(GoType(t.Elem()))
	}
	if ret, ok := scalarTypes[t.ID()]; ok && t.Kind() == types.KindScalar {
		return ret
	}
	return reflect.TypeFor[interface{}]()
}

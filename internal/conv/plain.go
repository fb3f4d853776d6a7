package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/viant/paramconv/param/collection"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/types"
)

// Plain returns a JSON friendly rendition of value.
func Plain(value any) (any, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case collection.Collection:
		return plainSlice(actual.Values())
	case []interface{}:
		return plainSlice(actual)
	case *atomic.Int32:
		return actual.Load(), nil
	case *atomic.Int64:
		return actual.Load(), nil
	case types.Constant:
		if actual.Value != nil {
			return Plain(actual.Value)
		}
		return actual.Name, nil
	case converter.Table:
		rows, err := actual.RowsAs(nil)
		if err != nil {
			return nil, err
		}
		return rows, nil
	}
	return value, nil
}

func plainSlice(values []interface{}) ([]interface{}, error) {
	ret := make([]interface{}, len(values))
	for i, item := range values {
		plain, err := Plain(item)
		if err != nil {
			return nil, err
		}
		ret[i] = plain
	}
	return ret, nil
}

// Marshal encodes the plain rendition of value as indented JSON.
func Marshal(value any) ([]byte, error) {
	plain, err := Plain(value)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(plain, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("conv.Marshal: %v: %w", reflect.TypeOf(value), err)
	}
	return data, nil
}

package converter

import (
	"context"
	"reflect"

	"github.com/viant/paramconv/param/types"
)

// ResourceLoader loads external text by identifier.
type ResourceLoader interface {
	LoadText(ctx context.Context, id string) (string, error)
}

// Table is a parsed examples table.
type Table interface {
	// RowsAs maps every row onto a new value of rowType; a nil rowType
	// yields the rows as map[string]string.
	RowsAs(rowType reflect.Type) ([]interface{}, error)
}

// TableFactory parses inline or referenced examples tables.
type TableFactory interface {
	NewTable(ctx context.Context, text string) (Table, error)
}

// JSONDecoder decodes JSON text, or the text of the resource it names,
// into a value of t.
type JSONDecoder interface {
	Decode(ctx context.Context, text string, t *types.Type) (interface{}, error)
}

// InstanceFactory supplies the owning instance of a bound method.
type InstanceFactory interface {
	InstanceOf(ctx context.Context, name string) (interface{}, error)
}

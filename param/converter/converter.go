package converter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/paramconv/param/types"
)

// Converter turns raw parameter text into one value of the types it accepts.
type Converter interface {
	// Accept reports whether the converter can produce values of t.
	Accept(t *types.Type) bool
	// Convert produces a value of t from value.
	Convert(ctx context.Context, value string, t *types.Type) (interface{}, error)
}

// Named lets a converter report a stable identity to monitors.
type Named interface {
	Name() string
}

// NameOf returns the converter identity: Name() when implemented, otherwise
// the Go type name.
func NameOf(c Converter) string {
	if named, ok := c.(Named); ok {
		return named.Name()
	}
	rType := reflect.TypeOf(c)
	for rType.Kind() == reflect.Pointer {
		rType = rType.Elem()
	}
	if rType.Name() == "" {
		return fmt.Sprintf("%T", c)
	}
	return rType.Name()
}

// Func adapts a function pair to Converter.
type Func struct {
	name    string
	accept  func(t *types.Type) bool
	convert func(ctx context.Context, value string, t *types.Type) (interface{}, error)
}

// NewFunc creates a converter from functions.
func NewFunc(name string, accept func(t *types.Type) bool, convert func(ctx context.Context, value string, t *types.Type) (interface{}, error)) *Func {
	return &Func{name: name, accept: accept, convert: convert}
}

func (f *Func) Name() string { return f.name }

func (f *Func) Accept(t *types.Type) bool { return f.accept(t) }

func (f *Func) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	return f.convert(ctx, value, t)
}

// elementOf returns the type a marked composite converter materialises:
// the element of a parameterized type or t itself.
func elementOf(t *types.Type) *types.Type {
	if t.Kind() == types.KindParameterized {
		return t.Elem()
	}
	return t
}

// unmarked reports whether t carries neither the JSON nor the Rows mark;
// marked types belong to the JSON and row converters.
func unmarked(t *types.Type) bool {
	return !t.Marked(types.JSON) && !t.Marked(types.Rows)
}

// acceptsMarked implements the shared accept rule of the row and JSON
// converters: t is marked, or t is parameterized and its element is marked.
func acceptsMarked(t *types.Type, mark types.Mark) bool {
	if t == nil {
		return false
	}
	if t.Marked(mark) {
		return true
	}
	return t.Kind() == types.KindParameterized && t.Elem().Marked(mark)
}

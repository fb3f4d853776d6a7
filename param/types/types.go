package types

import (
	"reflect"
	"strings"
)

// Kind identifies the shape of a conversion target.
type Kind int

const (
	// KindScalar is a plain named type such as int or string.
	KindScalar Kind = iota
	// KindParameterized is a generic type with exactly one element type.
	KindParameterized
	// KindEnumeration is a closed set of named constants.
	KindEnumeration
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindParameterized:
		return "parameterized"
	case KindEnumeration:
		return "enumeration"
	}
	return "unknown"
}

// Mark flags a type for one of the composite converters.
type Mark uint8

const (
	// Rows marks a type whose values are mapped from examples table rows.
	Rows Mark = 1 << iota
	// JSON marks a type whose values are decoded from JSON text.
	JSON
)

// Constant is a single enumeration member. Value is what a conversion
// returns; when nil the Constant itself is returned.
type Constant struct {
	Name    string
	Ordinal int
	Value   interface{}
}

// Type describes a conversion target. Values are built by the caller at the
// conversion boundary and never mutated afterwards.
type Type struct {
	kind      Kind
	id        string
	elem      *Type
	constants []Constant
	marks     Mark
	goType    reflect.Type
}

// Option customises a Type at construction time.
type Option func(*Type)

// WithMarks sets composite converter marks.
func WithMarks(marks Mark) Option {
	return func(t *Type) {
		t.marks |= marks
	}
}

// WithGoType binds a Go type used by decoding collaborators to materialise
// row-mapped or JSON-bound values.
func WithGoType(rType reflect.Type) Option {
	return func(t *Type) {
		t.goType = rType
	}
}

// Bind is a generic shortcut for WithGoType.
func Bind[T any]() Option {
	return WithGoType(reflect.TypeFor[T]())
}

// Scalar returns a scalar type descriptor.
func Scalar(id string, options ...Option) *Type {
	return newType(&Type{kind: KindScalar, id: id}, options)
}

// Parameterized returns a generic type descriptor with one element type.
func Parameterized(rawID string, elem *Type, options ...Option) *Type {
	return newType(&Type{kind: KindParameterized, id: rawID, elem: elem}, options)
}

// Enumeration returns an enumeration descriptor. Constants without an
// explicit ordinal keep their position.
func Enumeration(id string, constants ...Constant) *Type {
	ret := &Type{kind: KindEnumeration, id: id, constants: make([]Constant, len(constants))}
	for i, c := range constants {
		if c.Ordinal == 0 {
			c.Ordinal = i
		}
		ret.constants[i] = c
	}
	return ret
}

// Names builds enumeration constants from names in declaration order.
func Names(names ...string) []Constant {
	ret := make([]Constant, len(names))
	for i, name := range names {
		ret[i] = Constant{Name: name, Ordinal: i}
	}
	return ret
}

// ListOf is shorthand for Parameterized(List, elem).
func ListOf(elem *Type, options ...Option) *Type {
	return Parameterized(List, elem, options...)
}

// SetOf is shorthand for Parameterized(Set, elem).
func SetOf(elem *Type, options ...Option) *Type {
	return Parameterized(Set, elem, options...)
}

// SortedSetOf is shorthand for Parameterized(SortedSet, elem).
func SortedSetOf(elem *Type, options ...Option) *Type {
	return Parameterized(SortedSet, elem, options...)
}

func newType(t *Type, options []Option) *Type {
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Kind returns the descriptor kind.
func (t *Type) Kind() Kind { return t.kind }

// ID returns the type id (raw id for parameterized types).
func (t *Type) ID() string { return t.id }

// Elem returns the element type of a parameterized type, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// GoType returns the bound Go type, or nil.
func (t *Type) GoType() reflect.Type { return t.goType }

// Marked reports whether every flag in mark is set.
func (t *Type) Marked(mark Mark) bool { return t != nil && t.marks&mark == mark }

// IsScalar reports whether t is a scalar with the given id.
func (t *Type) IsScalar(id string) bool {
	return t != nil && t.kind == KindScalar && t.id == id
}

// IsParameterized reports whether t is parameterized with the given raw id.
func (t *Type) IsParameterized(rawID string) bool {
	return t != nil && t.kind == KindParameterized && t.id == rawID
}

// Constants returns a copy of the enumeration constants.
func (t *Type) Constants() []Constant {
	return append([]Constant(nil), t.constants...)
}

// Constant looks up an enumeration constant by its exact name.
func (t *Type) Constant(name string) (Constant, bool) {
	for _, c := range t.constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Equal reports structural equality. Marks and Go bindings take part so that
// a plain string and a JSON-bound string are distinct targets.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.kind != o.kind || t.id != o.id || t.marks != o.marks || t.goType != o.goType {
		return false
	}
	if t.kind == KindParameterized {
		return t.elem.Equal(o.elem)
	}
	return true
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case KindParameterized:
		return t.id + "<" + t.elem.String() + ">"
	case KindEnumeration:
		names := make([]string, len(t.constants))
		for i, c := range t.constants {
			names[i] = c.Name
		}
		return "enum " + t.id + "{" + strings.Join(names, ",") + "}"
	}
	return t.id
}

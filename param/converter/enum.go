package converter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/viant/paramconv/param/types"
)

// Enum resolves enumeration constants by exact, case-sensitive name.
type Enum struct{}

// NewEnum creates an enum converter.
func NewEnum() *Enum { return &Enum{} }

func (c *Enum) Name() string { return "Enum" }

func (c *Enum) Accept(t *types.Type) bool {
	return t != nil && t.Kind() == types.KindEnumeration && unmarked(t)
}

func (c *Enum) Convert(_ context.Context, value string, t *types.Type) (interface{}, error) {
	constant, ok := t.Constant(value)
	if !ok {
		return nil, NewError(fmt.Sprintf("failed to convert %s for enum %s", value, t.ID()), value, t, ErrUnknownConstant)
	}
	if constant.Value != nil {
		return constant.Value, nil
	}
	return constant, nil
}

var nonWord = regexp.MustCompile(`\W+`)

// FluentEnum lets prose name enumeration constants: "login page" resolves
// LOGIN_PAGE. The text is upper-cased and every run of non-word characters
// becomes an underscore before the exact lookup.
type FluentEnum struct {
	Enum
}

// NewFluentEnum creates a fluent enum converter.
func NewFluentEnum() *FluentEnum { return &FluentEnum{} }

func (c *FluentEnum) Name() string { return "FluentEnum" }

func (c *FluentEnum) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	return c.Enum.Convert(ctx, strings.ToUpper(nonWord.ReplaceAllString(value, "_")), t)
}

// NewEnumList returns a list converter for enumeration constants.
func NewEnumList(separator string) *List {
	return NewList(NewEnum(), separator)
}

package converter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/paramconv/param/types"
	"github.com/viant/toolbox"
)

const (
	// DefaultTrueValue is the default true token.
	DefaultTrueValue = "true"
	// DefaultFalseValue is the default false token.
	DefaultFalseValue = "false"
	// DefaultDatePattern is the default date pattern.
	DefaultDatePattern = "dd/MM/yyyy"
	// DefaultNewline replaces every newline variant in string values.
	DefaultNewline = "\n"
)

// String normalises newlines and otherwise returns the text unchanged.
type String struct {
	newline  string
	replacer *strings.Replacer
}

// NewString creates a string converter; an empty newline means "\n".
func NewString(newline string) *String {
	if newline == "" {
		newline = DefaultNewline
	}
	return &String{newline: newline, replacer: strings.NewReplacer("\r\n", newline, "\n", newline)}
}

func (c *String) Name() string { return "String" }

func (c *String) Accept(t *types.Type) bool {
	return t.IsScalar(types.String) && unmarked(t)
}

func (c *String) Convert(_ context.Context, value string, _ *types.Type) (interface{}, error) {
	return c.replacer.Replace(value), nil
}

// NewStringList returns the list converter for strings.
func NewStringList(separator string) *List {
	return NewList(NewString(""), separator)
}

// Boolean matches the configured tokens exactly. Text matching neither token
// converts to false without an error.
type Boolean struct {
	trueValue  string
	falseValue string
}

// NewBoolean creates a boolean converter; empty tokens fall back to the
// defaults.
func NewBoolean(trueValue, falseValue string) *Boolean {
	if trueValue == "" {
		trueValue = DefaultTrueValue
	}
	if falseValue == "" {
		falseValue = DefaultFalseValue
	}
	return &Boolean{trueValue: trueValue, falseValue: falseValue}
}

func (c *Boolean) Name() string { return "Boolean" }

// Tokens returns the true and false tokens.
func (c *Boolean) Tokens() (string, string) { return c.trueValue, c.falseValue }

func (c *Boolean) Accept(t *types.Type) bool {
	return t.IsScalar(types.Bool) && unmarked(t)
}

func (c *Boolean) Convert(_ context.Context, value string, _ *types.Type) (interface{}, error) {
	if value == c.trueValue {
		return true, nil
	}
	return false, nil
}

// NewBooleanList returns a list converter for booleans.
func NewBooleanList(separator, trueValue, falseValue string) *List {
	return NewList(NewBoolean(trueValue, falseValue), separator)
}

// Date parses time.Time values using a token pattern such as dd/MM/yyyy,
// translated to a Go layout by toolbox.DateFormatToLayout.
type Date struct {
	pattern string
	layout  string
}

// NewDate creates a date converter; an empty pattern means dd/MM/yyyy.
func NewDate(pattern string) *Date {
	if pattern == "" {
		pattern = DefaultDatePattern
	}
	return &Date{pattern: pattern, layout: toolbox.DateFormatToLayout(pattern)}
}

func (c *Date) Name() string { return "Date" }

// Pattern returns the configured date pattern.
func (c *Date) Pattern() string { return c.pattern }

func (c *Date) Accept(t *types.Type) bool {
	return t.IsScalar(types.Time) && unmarked(t)
}

func (c *Date) Convert(_ context.Context, value string, t *types.Type) (interface{}, error) {
	ret, err := time.Parse(c.layout, value)
	if err != nil {
		return nil, NewError(fmt.Sprintf("failed to convert value %s with date format %s", value, c.pattern), value, t, err)
	}
	return ret, nil
}

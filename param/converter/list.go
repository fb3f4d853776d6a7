package converter

import (
	"context"
	"regexp"
	"strings"

	"github.com/viant/paramconv/param/types"
)

// DefaultSeparator splits collection values.
const DefaultSeparator = ","

// Separator splits raw collection text. It keeps the configured literal and
// its escaped pattern form.
type Separator struct {
	literal string
	pattern *regexp.Regexp
}

// NewSeparator creates a separator; empty text means DefaultSeparator.
func NewSeparator(literal string) *Separator {
	if literal == "" {
		literal = DefaultSeparator
	}
	return &Separator{literal: literal, pattern: regexp.MustCompile(regexp.QuoteMeta(literal))}
}

// Literal returns the configured separator text.
func (s *Separator) Literal() string { return s.literal }

// Escaped returns the separator as a pattern.
func (s *Separator) Escaped() string { return s.pattern.String() }

// Split returns trimmed pieces of value in textual order. Blank text yields
// no pieces and trailing empty pieces are dropped.
func (s *Separator) Split(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	pieces := s.pattern.Split(value, -1)
	for len(pieces) > 0 && pieces[len(pieces)-1] == "" {
		pieces = pieces[:len(pieces)-1]
	}
	for i, piece := range pieces {
		pieces[i] = strings.TrimSpace(piece)
	}
	return pieces
}

// List converts separated text into []interface{} using an element
// converter. It accepts unmarked List types whose element the element
// converter accepts.
type List struct {
	separator *Separator
	element   Converter
}

// NewList wraps element; an empty separator means DefaultSeparator.
func NewList(element Converter, separator string) *List {
	return &List{separator: NewSeparator(separator), element: element}
}

func (c *List) Name() string { return NameOf(c.element) + "List" }

func (c *List) Accept(t *types.Type) bool {
	if !t.IsParameterized(types.List) || !unmarked(t) {
		return false
	}
	return c.element.Accept(t.Elem())
}

func (c *List) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	pieces := c.separator.Split(value)
	ret := make([]interface{}, 0, len(pieces))
	for _, piece := range pieces {
		item, err := c.element.Convert(ctx, piece, t.Elem())
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

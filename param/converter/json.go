package converter

import (
	"context"

	"github.com/viant/paramconv/param/types"
)

// JSON decodes JSON marked types through a JSONDecoder.
type JSON struct {
	decoder JSONDecoder
}

// NewJSON creates a JSON converter.
func NewJSON(decoder JSONDecoder) *JSON {
	return &JSON{decoder: decoder}
}

func (c *JSON) Name() string { return "Json" }

func (c *JSON) Accept(t *types.Type) bool {
	return acceptsMarked(t, types.JSON)
}

func (c *JSON) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	ret, err := c.decoder.Decode(ctx, value, t)
	if err != nil {
		return nil, NewError("", value, t, err)
	}
	return ret, nil
}

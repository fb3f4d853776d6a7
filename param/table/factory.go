package table

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/paramconv/internal/syncmap"
	"github.com/viant/paramconv/param/converter"
)

// Factory creates tables from inline text or from the resource the text
// names.
type Factory struct {
	loader       converter.ResourceLoader
	transformers *syncmap.Map[string, Transformer]
}

// NewFactory creates a factory with the built-in transformers; loader may be
// nil when only inline tables are used.
func NewFactory(loader converter.ResourceLoader) *Factory {
	ret := &Factory{loader: loader, transformers: syncmap.New[string, Transformer]()}
	ret.Register(FromLandscape, fromLandscape)
	ret.Register(Replacing, replacing)
	return ret
}

// Register adds or replaces a named transformer.
func (f *Factory) Register(name string, transformer Transformer) {
	f.transformers.Set(name, transformer)
}

// Transformers returns the registered transformer names in order.
func (f *Factory) Transformers() []string {
	ret := f.transformers.Keys()
	sort.Strings(ret)
	return ret
}

// Parse builds a table from text, loading it first when text is a resource
// identifier.
func (f *Factory) Parse(ctx context.Context, text string) (*Table, error) {
	if isResource(text) {
		if f.loader == nil {
			return nil, fmt.Errorf("no resource loader for table %q", strings.TrimSpace(text))
		}
		loaded, err := f.loader.LoadText(ctx, text)
		if err != nil {
			return nil, err
		}
		if isResource(loaded) {
			return nil, errors.New("resource " + strings.TrimSpace(text) + " does not hold a table")
		}
		text = loaded
	}
	return Parse(text, f.transformers.Lookup)
}

// NewTable implements converter.TableFactory.
func (f *Factory) NewTable(ctx context.Context, text string) (converter.Table, error) {
	table, err := f.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func isResource(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && !strings.Contains(trimmed, defaultSeparator) && !strings.HasPrefix(trimmed, "{")
}

package param

import (
	"fmt"

	"github.com/viant/paramconv/internal/syncmap"
	"github.com/viant/paramconv/param/collection"
	"github.com/viant/paramconv/param/config"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/json"
	"github.com/viant/paramconv/param/monitor"
	"github.com/viant/paramconv/param/number"
	"github.com/viant/paramconv/param/resource"
	"github.com/viant/paramconv/param/table"
	"github.com/viant/paramconv/param/types"
)

// New creates a registry with the default converters and collection
// factories, configured by opts.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		config:      config.Default(),
		defaults:    true,
		collections: syncmap.New[string, CollectionFactory](),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewWithConfig creates a registry from a configuration. Additional options
// are applied after it.
func NewWithConfig(cfg *config.Config, opts ...Option) (*Registry, error) {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

func (r *Registry) init() error {
	r.initDefaults()
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid registry config: %w", err)
	}
	format, err := number.NewFormat(r.config.Locale)
	if err != nil {
		return err
	}
	r.format = format
	r.separator = converter.NewSeparator(r.config.Separator)

	r.collections.Set(types.List, func() (collection.Collection, error) { return collection.NewList(), nil })
	r.collections.Set(types.Set, func() (collection.Collection, error) { return collection.NewHashSet(), nil })
	r.collections.Set(types.SortedSet, func() (collection.Collection, error) { return collection.NewSortedSet(), nil })
	r.collections.Set(types.NavigableSet, func() (collection.Collection, error) { return collection.NewSortedSet(), nil })

	var converters []converter.Converter
	converters = append(converters, r.extra...)
	if r.defaults {
		converters = append(converters, DefaultConverters(r.config, r.format, r.tables, r.decoder)...)
	}
	r.update(func([]converter.Converter) []converter.Converter { return converters })
	return nil
}

// initDefaults applies fall-back values for collaborators not supplied
// through options.
func (r *Registry) initDefaults() {
	r.config.Defaults()
	if r.monitor == nil {
		r.monitor = monitor.Silent{}
	}
	if r.loader == nil {
		r.loader = resource.New(r.config.ResourceBaseURL)
	}
	if r.tables == nil {
		r.tables = table.NewFactory(r.loader)
	}
	if r.decoder == nil {
		r.decoder = json.NewFactory(r.loader)
	}
}

// DefaultConverters returns the default converters in priority order:
// Boolean, Number, String, String list, Date, Enum, ExamplesTable, table
// rows and JSON.
func DefaultConverters(cfg *config.Config, format *number.Format, tables converter.TableFactory, decoder converter.JSONDecoder) []converter.Converter {
	return []converter.Converter{
		converter.NewBoolean(cfg.TrueValue, cfg.FalseValue),
		converter.NewNumber(format),
		converter.NewString(cfg.Newline),
		converter.NewList(converter.NewString(cfg.Newline), cfg.Separator),
		converter.NewDate(cfg.DatePattern),
		converter.NewEnum(),
		converter.NewExamplesTable(tables),
		converter.NewTableRows(tables),
		converter.NewJSON(decoder),
	}
}

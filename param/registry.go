package param

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/paramconv/internal/syncmap"
	"github.com/viant/paramconv/param/collection"
	"github.com/viant/paramconv/param/config"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/monitor"
	"github.com/viant/paramconv/param/number"
	"github.com/viant/paramconv/param/types"
)

// CollectionFactory creates an empty collection for a raw collection id.
type CollectionFactory func() (collection.Collection, error)

// Registry dispatches conversions to an ordered list of converters.
//
// In thread-safe mode the list is published as immutable snapshots: readers
// never lock and writers copy. Otherwise the list is a plain slice and the
// caller serializes mutation with conversion.
type Registry struct {
	config      *config.Config
	separator   *converter.Separator
	monitor     monitor.Monitor
	format      *number.Format
	loader      converter.ResourceLoader
	tables      converter.TableFactory
	decoder     converter.JSONDecoder
	collections *syncmap.Map[string, CollectionFactory]

	defaults bool
	extra    []converter.Converter

	mux        sync.Mutex
	snapshot   atomic.Pointer[[]converter.Converter]
	converters []converter.Converter
}

// Config returns the effective configuration; callers must treat it as
// read-only.
func (r *Registry) Config() *config.Config { return r.config }

// Separator returns the collection separator.
func (r *Registry) Separator() *converter.Separator { return r.separator }

// Monitor returns the conversion monitor.
func (r *Registry) Monitor() monitor.Monitor { return r.monitor }

// NumberFormat returns the configured number format.
func (r *Registry) NumberFormat() *number.Format { return r.format }

// ResourceLoader returns the loader used by the table and JSON collaborators.
func (r *Registry) ResourceLoader() converter.ResourceLoader { return r.loader }

// TableFactory returns the factory behind the table converters.
func (r *Registry) TableFactory() converter.TableFactory { return r.tables }

// ThreadSafe reports whether the converter list is copy-on-write.
func (r *Registry) ThreadSafe() bool { return r.config.IsThreadSafe() }

// Converters returns a snapshot of the converters in priority order.
func (r *Registry) Converters() []converter.Converter {
	list := r.list()
	return append(make([]converter.Converter, 0, len(list)), list...)
}

func (r *Registry) list() []converter.Converter {
	if !r.config.IsThreadSafe() {
		return r.converters
	}
	if ptr := r.snapshot.Load(); ptr != nil {
		return *ptr
	}
	return nil
}

func (r *Registry) update(fn func(list []converter.Converter) []converter.Converter) {
	if !r.config.IsThreadSafe() {
		r.converters = fn(r.converters)
		return
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	next := fn(r.list())
	r.snapshot.Store(&next)
}

// AddConverters inserts converters ahead of the existing ones, keeping their
// relative order, so later registrations take priority.
func (r *Registry) AddConverters(converters ...converter.Converter) *Registry {
	r.update(func(list []converter.Converter) []converter.Converter {
		next := make([]converter.Converter, 0, len(converters)+len(list))
		next = append(next, converters...)
		return append(next, list...)
	})
	return r
}

// NewInstanceAdding returns a registry sharing the configuration, monitor
// and collaborators of r, with c appended at the lowest priority. r is left
// untouched.
func (r *Registry) NewInstanceAdding(c converter.Converter) *Registry {
	ret := &Registry{
		config:      r.config,
		separator:   r.separator,
		monitor:     r.monitor,
		format:      r.format,
		loader:      r.loader,
		tables:      r.tables,
		decoder:     r.decoder,
		collections: syncmap.New[string, CollectionFactory](),
		defaults:    r.defaults,
	}
	for _, raw := range r.collections.Keys() {
		ret.collections.Set(raw, r.collections.Get(raw))
	}
	list := r.list()
	next := make([]converter.Converter, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, c)
	ret.update(func([]converter.Converter) []converter.Converter { return next })
	return ret
}

// RegisterCollection makes raw a collection id the registry can assemble.
func (r *Registry) RegisterCollection(raw string, factory CollectionFactory) *Registry {
	r.collections.Set(raw, factory)
	return r
}

// Find returns the first converter accepting t.
func (r *Registry) Find(t *types.Type) (converter.Converter, bool) {
	for _, c := range r.list() {
		if c.Accept(t) {
			return c, true
		}
	}
	return nil, false
}

// Convert converts value into t. The first accepting converter wins; with
// none, parameterized collection types are assembled from their elements.
func (r *Registry) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	if c, ok := r.Find(t); ok {
		ret, err := c.Convert(ctx, value, t)
		if err != nil {
			r.failed(ctx, value, t, err)
			return nil, err
		}
		r.monitor.Converted(ctx, value, t, ret, converter.NameOf(c))
		return ret, nil
	}
	if t != nil && t.Kind() == types.KindParameterized {
		if factory, ok := r.collections.Lookup(t.ID()); ok {
			if element, ok := r.Find(t.Elem()); ok {
				ret, err := r.convertCollection(ctx, value, t, factory, element)
				if err != nil {
					r.failed(ctx, value, t, err)
					return nil, err
				}
				return ret, nil
			}
		}
	}
	err := converter.NewError(fmt.Sprintf("no parameter converter for %v", t), value, t, converter.ErrNoConverter)
	r.failed(ctx, value, t, err)
	return nil, err
}

func (r *Registry) convertCollection(ctx context.Context, value string, t *types.Type, factory CollectionFactory, element converter.Converter) (interface{}, error) {
	coll, err := factory()
	if err == nil && coll == nil {
		err = fmt.Errorf("factory for %v returned nil", t.ID())
	}
	if err != nil {
		return nil, converter.NewError(fmt.Sprintf("failed to create collection %v", t), value, t, fmt.Errorf("%w: %w", converter.ErrCollectionConstruction, err))
	}
	for _, piece := range r.separator.Split(value) {
		item, err := element.Convert(ctx, piece, t.Elem())
		if err != nil {
			return nil, err
		}
		if err = coll.Add(item); err != nil {
			return nil, converter.NewError("", value, t, err)
		}
	}
	return coll.Value(), nil
}

func (r *Registry) failed(ctx context.Context, value string, t *types.Type, err error) {
	if failure, ok := r.monitor.(monitor.FailureMonitor); ok {
		failure.Failed(ctx, value, t, err)
	}
}

// Release drops per-execution state (number format clones) held for the
// execution carried by ctx.
func (r *Registry) Release(ctx context.Context) {
	for _, c := range r.list() {
		if releaser, ok := c.(interface{ Release(ctx context.Context) }); ok {
			releaser.Release(ctx)
		}
	}
}

package param

import (
	"github.com/viant/paramconv/param/config"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/monitor"
)

// Option modifies a registry before it is initialised. Options are applied in
// order, so WithConfig should precede the single field options it would
// otherwise overwrite.
type Option func(*Registry)

// WithConfig sets the configuration; the registry keeps its own copy.
func WithConfig(cfg *config.Config) Option {
	return func(r *Registry) {
		if cfg == nil {
			return
		}
		clone := *cfg
		r.config = &clone
	}
}

// WithLocale sets the number locale (BCP 47).
func WithLocale(locale string) Option {
	return func(r *Registry) {
		r.config.Locale = locale
	}
}

// WithSeparator sets the collection separator.
func WithSeparator(separator string) Option {
	return func(r *Registry) {
		r.config.Separator = separator
	}
}

// WithThreadSafe selects the copy-on-write converter list (the default)
// or a plain slice for single goroutine use.
func WithThreadSafe(threadSafe bool) Option {
	return func(r *Registry) {
		r.config.ThreadSafe = &threadSafe
	}
}

// WithMonitor sets the conversion monitor; Silent is used when omitted.
func WithMonitor(m monitor.Monitor) Option {
	return func(r *Registry) {
		r.monitor = m
	}
}

// WithResourceLoader overrides the afs based resource loader used by the
// default table and JSON collaborators.
func WithResourceLoader(loader converter.ResourceLoader) Option {
	return func(r *Registry) {
		r.loader = loader
	}
}

// WithTableFactory overrides the examples table factory.
func WithTableFactory(factory converter.TableFactory) Option {
	return func(r *Registry) {
		r.tables = factory
	}
}

// WithJSONDecoder overrides the JSON decoder.
func WithJSONDecoder(decoder converter.JSONDecoder) Option {
	return func(r *Registry) {
		r.decoder = decoder
	}
}

// WithDefaults controls whether the default converters are registered
// (enabled unless told otherwise).
func WithDefaults(enabled bool) Option {
	return func(r *Registry) {
		r.defaults = enabled
	}
}

// WithConverters registers converters ahead of the defaults.
func WithConverters(converters ...converter.Converter) Option {
	return func(r *Registry) {
		r.extra = append(r.extra, converters...)
	}
}

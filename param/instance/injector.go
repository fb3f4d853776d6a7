package instance

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/do"
)

// Injector resolves named instances. Every service is registered as
// interface{} so it can be looked up by name alone.
type Injector struct {
	injector *do.Injector
}

// New creates an empty injector.
func New() *Injector {
	return &Injector{injector: do.New()}
}

// Wrap adapts an existing do injector.
func Wrap(injector *do.Injector) *Injector {
	return &Injector{injector: injector}
}

// Injector returns the underlying do injector.
func (i *Injector) Injector() *do.Injector { return i.injector }

// ProvideValue registers a ready instance, replacing any previous one.
func (i *Injector) ProvideValue(name string, value interface{}) {
	do.OverrideNamedValue[interface{}](i.injector, name, value)
}

// Provide registers a lazily built instance, replacing any previous one.
func Provide[T any](i *Injector, name string, provider func(injector *do.Injector) (T, error)) {
	do.OverrideNamed[interface{}](i.injector, name, func(injector *do.Injector) (interface{}, error) {
		ret, err := provider(injector)
		if err != nil {
			return nil, err
		}
		return ret, nil
	})
}

// InstanceOf implements converter.InstanceFactory.
func (i *Injector) InstanceOf(_ context.Context, name string) (interface{}, error) {
	ret, err := do.InvokeNamed[interface{}](i.injector, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve instance %q: %w", name, err)
	}
	return ret, nil
}

// Names returns the registered instance names in order.
func (i *Injector) Names() []string {
	ret := i.injector.ListProvidedServices()
	sort.Strings(ret)
	return ret
}

package converter

import (
	"context"
	"fmt"

	"github.com/viant/paramconv/param/types"
)

// MethodFunc is a bound operation: it receives the owning instance and the
// raw value and returns the converted value.
type MethodFunc func(ctx context.Context, instance interface{}, value string) (interface{}, error)

// MethodReturning converts by invoking an operation whose declared return
// type is exactly the requested type. The owner is resolved through the
// instance factory on every conversion.
type MethodReturning struct {
	method    string
	owner     string
	returns   *types.Type
	instances InstanceFactory
	fn        MethodFunc
}

// NewMethodReturning binds fn as method of owner returning returns. A nil
// instances factory invokes fn with a nil instance.
func NewMethodReturning(method, owner string, returns *types.Type, instances InstanceFactory, fn MethodFunc) *MethodReturning {
	return &MethodReturning{
		method:    method,
		owner:     owner,
		returns:   returns,
		instances: instances,
		fn:        fn,
	}
}

func (c *MethodReturning) Name() string { return "MethodReturning(" + c.owner + "." + c.method + ")" }

// Returns returns the declared return type.
func (c *MethodReturning) Returns() *types.Type { return c.returns }

func (c *MethodReturning) Accept(t *types.Type) bool {
	return c.returns.Equal(t)
}

func (c *MethodReturning) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	var instance interface{}
	if c.instances != nil {
		var err error
		if instance, err = c.instances.InstanceOf(ctx, c.owner); err != nil {
			return nil, c.failure(value, t, err)
		}
	}
	ret, err := c.fn(ctx, instance, value)
	if err != nil {
		return nil, c.failure(value, t, err)
	}
	return ret, nil
}

func (c *MethodReturning) failure(value string, t *types.Type, cause error) error {
	return NewError(fmt.Sprintf("failed to invoke method %s with value %s in %s", c.method, value, c.owner), value, t, cause)
}

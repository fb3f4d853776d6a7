package number

import (
	"context"

	"github.com/google/uuid"
	"github.com/viant/paramconv/internal/syncmap"
)

type executionKey struct{}

// DefaultCacheLimit caps the executions a Cache keeps clones for.
const DefaultCacheLimit = 4096

// WithExecution tags ctx with an execution id unless it already carries one.
// Conversions sharing the id reuse the same cloned Format until the execution
// is released (Registry.Release or Cache.Release). Unreleased executions stay
// cached up to the cache limit; later ones get an uncached clone per call.
func WithExecution(ctx context.Context) context.Context {
	if _, ok := ExecutionID(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, executionKey{}, uuid.NewString())
}

// ExecutionID returns the execution id carried by ctx.
func ExecutionID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(executionKey{}).(string)
	return id, ok && id != ""
}

// Cache hands out per-execution clones of a prototype Format.
type Cache struct {
	prototype *Format
	formats   *syncmap.Map[string, *Format]
	limit     int
}

// NewCache creates a cache around prototype holding at most
// DefaultCacheLimit executions. The prototype itself is never used for
// parsing.
func NewCache(prototype *Format) *Cache {
	return NewBoundedCache(prototype, DefaultCacheLimit)
}

// NewBoundedCache creates a cache keeping clones for at most limit
// executions; limit <= 0 means DefaultCacheLimit. The bound is checked
// before insertion, so concurrent first uses may overshoot it slightly.
func NewBoundedCache(prototype *Format, limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{prototype: prototype, formats: syncmap.New[string, *Format](), limit: limit}
}

// Prototype returns the configured format.
func (c *Cache) Prototype() *Format { return c.prototype }

// Format returns the clone owned by the execution carried in ctx, creating
// it on first use. Without an execution id a fresh clone is returned.
func (c *Cache) Format(ctx context.Context) *Format {
	id, ok := ExecutionID(ctx)
	if !ok {
		return c.prototype.Clone()
	}
	if ret, ok := c.formats.Lookup(id); ok {
		return ret
	}
	if c.formats.Len() >= c.limit {
		return c.prototype.Clone()
	}
	return c.formats.GetOrCreate(id, c.prototype.Clone)
}

// Release drops the clone held for the execution carried in ctx.
func (c *Cache) Release(ctx context.Context) {
	if id, ok := ExecutionID(ctx); ok {
		c.formats.Delete(id)
	}
}

// Len returns the number of cached clones.
func (c *Cache) Len() int { return c.formats.Len() }

package monitor

import (
	"context"

	"github.com/viant/paramconv/param/types"
)

// Monitor is notified once per successful conversion.
type Monitor interface {
	Converted(ctx context.Context, value string, t *types.Type, result interface{}, converter string)
}

// FailureMonitor is optionally implemented by monitors that also want to see
// failed conversions.
type FailureMonitor interface {
	Failed(ctx context.Context, value string, t *types.Type, err error)
}

// Silent ignores every notification.
type Silent struct{}

func (Silent) Converted(context.Context, string, *types.Type, interface{}, string) {}

// Multi fans notifications out to every monitor in order.
type Multi []Monitor

// NewMulti skips nil monitors.
func NewMulti(monitors ...Monitor) Multi {
	ret := make(Multi, 0, len(monitors))
	for _, m := range monitors {
		if m != nil {
			ret = append(ret, m)
		}
	}
	return ret
}

func (m Multi) Converted(ctx context.Context, value string, t *types.Type, result interface{}, converter string) {
	for _, item := range m {
		item.Converted(ctx, value, t, result, converter)
	}
}

func (m Multi) Failed(ctx context.Context, value string, t *types.Type, err error) {
	for _, item := range m {
		if failure, ok := item.(FailureMonitor); ok {
			failure.Failed(ctx, value, t, err)
		}
	}
}

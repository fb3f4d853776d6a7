package monitor

import (
	"context"
	"fmt"

	"github.com/viant/paramconv/param/types"
	"github.com/zoobzio/capitan"
)

// Signals emitted by the Signals monitor.
var (
	SignalConverted        = capitan.NewSignal("param.converted", "Parameter value converted")
	SignalConversionFailed = capitan.NewSignal("param.conversion.failed", "Parameter value conversion failed")
)

// Field keys attached to conversion signals.
var (
	KeyValue     = capitan.NewStringKey("value")
	KeyType      = capitan.NewStringKey("type")
	KeyResult    = capitan.NewStringKey("result")
	KeyConverter = capitan.NewStringKey("converter")
	KeyError     = capitan.NewErrorKey("error")
)

// Signals publishes conversions as capitan events.
type Signals struct{}

// NewSignals creates a signal emitting monitor.
func NewSignals() *Signals { return &Signals{} }

func (s *Signals) Converted(ctx context.Context, value string, t *types.Type, result interface{}, converter string) {
	capitan.Emit(ctx, SignalConverted,
		KeyValue.Field(value),
		KeyType.Field(t.String()),
		KeyResult.Field(fmt.Sprintf("%v", result)),
		KeyConverter.Field(converter),
	)
}

func (s *Signals) Failed(ctx context.Context, value string, t *types.Type, err error) {
	capitan.Error(ctx, SignalConversionFailed,
		KeyValue.Field(value),
		KeyType.Field(t.String()),
		KeyError.Field(err),
	)
}

package monitor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/paramconv/param/types"
)

type recorder struct {
	converted []string
	failed    []string
}

func (r *recorder) Converted(_ context.Context, value string, _ *types.Type, _ interface{}, converter string) {
	r.converted = append(r.converted, converter+":"+value)
}

func (r *recorder) Failed(_ context.Context, value string, _ *types.Type, err error) {
	r.failed = append(r.failed, value+":"+err.Error())
}

type convertedOnly struct {
	calls int
}

func (c *convertedOnly) Converted(context.Context, string, *types.Type, interface{}, string) {
	c.calls++
}

func TestMulti(t *testing.T) {
	first, second := &recorder{}, &convertedOnly{}
	multi := NewMulti(first, nil, second)
	assert.Len(t, multi, 2)

	ctx := context.Background()
	multi.Converted(ctx, "42", types.Scalar(types.Int), 42, "Number")
	multi.Failed(ctx, "x", types.Scalar(types.Int), errors.New("boom"))

	assert.Equal(t, []string{"Number:42"}, first.converted)
	assert.Equal(t, []string{"x:boom"}, first.failed)
	assert.Equal(t, 1, second.calls)
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(slog.New(slog.NewTextHandler(buf, nil)), slog.LevelInfo)
	ctx := context.Background()

	logger.Converted(ctx, "a,b", types.ListOf(types.Scalar(types.String)), []interface{}{"a", "b"}, "StringList")
	output := buf.String()
	assert.Contains(t, output, "parameter converted")
	assert.Contains(t, output, "type=List<string>")
	assert.Contains(t, output, "converter=StringList")

	buf.Reset()
	logger.Failed(ctx, "x", types.Scalar(types.Int), errors.New("unparseable"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "error=unparseable")

	buf.Reset()
	quiet := NewLogger(slog.New(slog.NewTextHandler(buf, nil)), slog.LevelDebug)
	quiet.Converted(ctx, "1", types.Scalar(types.Int), 1, "Number")
	assert.Empty(t, buf.String())
}

func TestSignals(t *testing.T) {
	signals := NewSignals()
	ctx := context.Background()
	assert.NotPanics(t, func() {
		signals.Converted(ctx, "1", types.Scalar(types.Int), 1, "Number")
		signals.Failed(ctx, "x", types.Scalar(types.Int), errors.New("boom"))
	})
	var _ Monitor = signals
	var _ FailureMonitor = signals
	var _ Monitor = Silent{}
}

package monitor

import (
	"context"
	"log/slog"

	"github.com/viant/paramconv/param/types"
)

// Logger writes conversions to a structured logger.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogger logs conversions at level; a nil logger means slog.Default().
func NewLogger(logger *slog.Logger, level slog.Level) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger, level: level}
}

func (l *Logger) Converted(ctx context.Context, value string, t *types.Type, result interface{}, converter string) {
	l.logger.Log(ctx, l.level, "parameter converted",
		slog.String("value", value),
		slog.String("type", t.String()),
		slog.Any("result", result),
		slog.String("converter", converter),
	)
}

func (l *Logger) Failed(ctx context.Context, value string, t *types.Type, err error) {
	l.logger.LogAttrs(ctx, slog.LevelWarn, "parameter conversion failed",
		slog.String("value", value),
		slog.String("type", t.String()),
		slog.Any("error", err),
	)
}

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithLevel raises the minimum level of an existing logger.
// A level below the logger's own has no effect.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.IncreaseLevel(lvl)
}

// Quiet swaps the global logger for one that only emits warnings and above.
// The CLI uses it so that informational logs do not interleave with rendered output.
func Quiet() {
	SetLogger(global.WithOptions(WithLevel(zapcore.WarnLevel)))
}

// Package logger backs the standard slog API with a Zap core.
package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New builds a Zap logger for the given environment.
// For "production", it uses a JSON encoder. For all other environments,
// it uses a human-readable console encoder.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// NewSlog wraps a Zap core in a slog logger.
func NewSlog(core zapcore.Core) *slog.Logger {
	return slog.New(zapslog.NewHandler(core))
}

// Init installs a Zap-backed slog logger as the process default.
// The returned function flushes buffered entries and should run before exit.
func Init(env, level string) func() {
	base, err := New(env, level)
	if err != nil {
		// Fallback to nop logger if initialization fails.
		base = zap.NewNop()
	}

	slog.SetDefault(NewSlog(base.Core()))

	return func() {
		_ = base.Sync()
	}
}

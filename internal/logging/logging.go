// Package logging builds the zap logger used by the CLI and server and adapts
// it to the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. format is "json" or "console"; level is any zap
// level name and defaults to info.
func New(level, format string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "json":
		cfg = zap.NewProductionConfig()
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// EngineLogger adapts a zap logger to calculation.Logger
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

// NewEngineLogger wraps l; a nil logger discards everything
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &EngineLogger{sugar: l.Named("engine").Sugar()}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.sugar.Debugf(format, args...) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.sugar.Infof(format, args...) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.sugar.Warnf(format, args...) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.sugar.Errorf(format, args...) }

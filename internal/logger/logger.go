package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract used across the application.
// It intentionally mirrors the zap field-based API so call sites stay cheap.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

// ZapLogger implements Logger on top of uber/zap.
type ZapLogger struct {
	l *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// New builds a logger. format is "json" (default) or "console"; level is a
// zap level name ("debug", "info", ...) and defaults to info when empty or invalid.
func New(format, level string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{l: z}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *ZapLogger {
	return &ZapLogger{l: zap.NewNop()}
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *ZapLogger) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *ZapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *ZapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }
func (z *ZapLogger) Fatal(msg string, fields ...zap.Field) { z.l.Fatal(msg, fields...) }

func (z *ZapLogger) With(fields ...zap.Field) Logger {
	return &ZapLogger{l: z.l.With(fields...)}
}

// Sync flushes buffered entries. Call on shutdown.
func (z *ZapLogger) Sync() error { return z.l.Sync() }

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the process logger. Debug mode switches to console
// encoding with debug level for local runs; otherwise JSON at info.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return config.Build()
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

// Sync flushes any buffered log entries. Safe to call on a nil logger.
func Sync(log *zap.Logger) {
	if log == nil {
		return
	}
	_ = log.Sync()
}

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop()

// Init replaces the global logger. Format is "console" or "json".
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}

	var zapConfig zap.Config
	switch format {
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %v", err)
	}

	globalLogger = logger
	return nil
}

func Debug(msg string, fields ...zap.Field) { globalLogger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { globalLogger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { globalLogger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { globalLogger.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { globalLogger.Fatal(msg, fields...) }

// Sync flushes any buffered log entries.
func Sync() error { return globalLogger.Sync() }

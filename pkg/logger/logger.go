// Package logger exposes the process-wide zap logger used by all commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.SugaredLogger

func init() {
	Log = build(zapcore.WarnLevel)
}

// SetLevel rebuilds the global logger at the requested level. Unknown level
// names fall back to warn.
func SetLevel(level string) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.WarnLevel
	}
	Log = build(zapLevel)
}

func build(level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(level)
	// Diagnostics must never pollute stdout, which commands reserve for data.
	config.OutputPaths = []string{"stderr"}

	logger, _ := config.Build()
	return logger.Sugar()
}

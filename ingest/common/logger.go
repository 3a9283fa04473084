// Package common provides the configuration structs and logging utilities
// shared by all benchmark components
package common

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// logLevel is shared by all loggers created via CreateLogger so the level
// can be adjusted once at startup for the whole process
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// CreateLogger returns a named sugared logger writing to stdout
func CreateLogger(pkgName string) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		logLevel,
	)

	return zap.New(core).Named(pkgName).Sugar()
}

// SetLogLevel adjusts the level of all loggers created by CreateLogger
func SetLogLevel(level string) {
	logLevel.SetLevel(parseLogLevel(level))
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to a zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warning", "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		panic(fmt.Sprintf("invalid log level: %s. must be one of debug, info, warn, error", level))
	}
}

// Package logging builds the zap logger shared by the CLI and the HTTP service.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a zap level.
// Unknown names fall back to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a production (JSON) logger when environment is "production"
// and a development (console) logger otherwise, at the given level.
// Output goes to stderr so stdout stays clean for command results.
func New(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}

	return logger, nil
}

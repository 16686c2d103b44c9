// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance. It discards everything until Setup
// succeeds, so packages and tests can log without initialization.
var Logger = zap.NewNop()

// NewConfig returns the zap configuration for a run. Debug runs get the
// development console encoder at debug level; otherwise JSON at info level.
// Both write to stderr, leaving stdout for the completion message.
func NewConfig(debug bool, appName, appVersion string) zap.Config {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}
	return cfg
}

// Setup replaces Logger and the zap globals with a logger built from
// NewConfig. On failure Logger falls back to zap.NewExample.
func Setup(debug bool, appName, appVersion string) error {
	logger, err := NewConfig(debug, appName, appVersion).Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

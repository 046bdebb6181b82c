// Package obslog builds the gateway's single structured logger, grounded
// on the pack's zap usage for service-level logging.
package obslog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger: the development preset (console-encoded,
// debug-level, stack traces on warn) when development is true, otherwise
// zap's production JSON preset.
func New(development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return nil, fmt.Errorf("obslog: building logger: %w", err)
	}
	return logger, nil
}

package logger

import (
	"fmt"

	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a colored console logger in DEV mode and a JSON logger otherwise.
// Every entry carries the service name.
func NewLogger(conf *config.App, service string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level: %w", err)
	}

	var cfg zap.Config
	if conf.Mode == config.AppModeDevelop {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}

	return log.With(zap.String("service", service)), nil
}

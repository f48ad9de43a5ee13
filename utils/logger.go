package utils

import (
	"log"

	"crmsections/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger, built on first use.
var Logger *zap.Logger

// NewLogger builds a JSON logger at info level for production and a coloured
// console logger at debug level otherwise. A parseable level overrides the
// environment default.
func NewLogger(production bool, level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if production {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

// InitializeLogger builds Logger from the loaded configuration and installs
// it as zap's global logger. An invalid LOG_LEVEL falls back to the default.
func InitializeLogger() {
	logger, err := NewLogger(config.IsProduction(), config.AppConfig.LogLevel)
	if err != nil {
		log.Printf("invalid LOG_LEVEL %q, using default: %v", config.AppConfig.LogLevel, err)
		if logger, err = NewLogger(config.IsProduction(), ""); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}
	Logger = logger
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

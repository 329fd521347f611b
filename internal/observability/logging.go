// Package observability sets up structured logging.
package observability

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/character-sheet/internal/config"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

// NewLogger creates a zap logger from the given logging configuration
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", cfg.Level)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case config.FormatJSON:
		zapCfg = zap.NewProductionConfig()
	case config.FormatConsole:
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, errors.InvalidArgumentf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// NewSlogger wraps a zap logger so slog calls land in the same core
func NewSlogger(logger *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(logger.Core()))
}

// Setup builds the logger and installs it as the slog default. The returned
// function flushes buffered entries.
func Setup(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	slogger := NewSlogger(logger)
	slog.SetDefault(slogger)

	return slogger, func() { _ = logger.Sync() }, nil
}

package observability_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/character-sheet/internal/config"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/observability"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name   string
		cfg    config.LoggingConfig
		level  zapcore.Level
		errors bool
	}{
		{"json info", config.LoggingConfig{Level: "info", Format: config.FormatJSON}, zapcore.InfoLevel, false},
		{"console debug", config.LoggingConfig{Level: "debug", Format: config.FormatConsole}, zapcore.DebugLevel, false},
		{"bad level", config.LoggingConfig{Level: "loud", Format: config.FormatJSON}, 0, true},
		{"bad format", config.LoggingConfig{Level: "info", Format: "xml"}, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := observability.NewLogger(tc.cfg)
			if tc.errors {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.level))
			assert.False(t, logger.Core().Enabled(tc.level-1))
		})
	}
}

func TestSloggerWritesToZapCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	slogger := observability.NewSlogger(zap.New(core))

	slogger.InfoContext(context.Background(), "roster saved", "roster_id", "roster_1", "characters", 2)
	slogger.DebugContext(context.Background(), "filtered")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "roster saved", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "roster_1", fields["roster_id"])
	assert.EqualValues(t, 2, fields["characters"])
}

func TestSetupInstallsDefault(t *testing.T) {
	slogger, flush, err := observability.Setup(config.LoggingConfig{Level: "warn", Format: config.FormatJSON})
	require.NoError(t, err)
	defer flush()

	assert.NotNil(t, slogger)
	assert.False(t, slogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}

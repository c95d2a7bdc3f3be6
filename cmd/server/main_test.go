package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nexivibe/spider/internal/config"
	"github.com/nexivibe/spider/internal/engine"
)

func TestSessionSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Game.DefaultMode = "daily"
	cfg.Game.DefaultSuits = 2
	cfg.Game.DailyTimezone = "Europe/Berlin"
	cfg.Engine.StrictInvariants = true

	s, err := sessionSettings(&cfg)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeDailyGrind, s.DefaultMode)
	assert.Equal(t, 2, s.DefaultSuits)
	assert.Equal(t, "Europe/Berlin", s.DailyLocation.String())
	assert.True(t, s.StrictInvariants)
}

func TestSessionSettingsRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	cfg.Game.DefaultMode = "weekly"
	_, err := sessionSettings(&cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Game.DailyTimezone = "Mars/Olympus"
	_, err = sessionSettings(&cfg)
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	logger, err := newLogger(config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))

	_, err = newLogger(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

package util

import (
	"math"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper(t)
	require.NoError(t, ReadConfig())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, EncoderConfig{Profile: "car_stopover", SpeedBits: 5, SpeedFactor: 5, TurnCosts: false, BlockFords: true}, cfg.Encoder)
	assert.Equal(t, WeightingConfig{Name: "stopover", Mode: "endpoint", Penalty: 300}, cfg.Weighting)
	assert.Equal(t, "./data/stopover.graph", cfg.Engine.GraphFile)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.InDelta(t, math.Pi/4, cfg.Engine.HeadingTolerance, 1e-12)
}

func TestLoadConfigFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("ENCODER_SPEEDBITS", "7")
	t.Setenv("WEIGHTING_MODE", "turn_delay")
	t.Setenv("WEIGHTING_PENALTY", "45")
	require.NoError(t, ReadConfig())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Encoder.SpeedBits)
	assert.Equal(t, "turn_delay", cfg.Weighting.Mode)
	assert.Equal(t, 45.0, cfg.Weighting.Penalty)
}

func TestLoadConfigInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "speed bits too wide", key: "ENCODER_SPEEDBITS", value: "40"},
		{name: "zero speed factor", key: "ENCODER_SPEEDFACTOR", value: "0"},
		{name: "both delay modes", key: "WEIGHTING_MODE", value: "both"},
		{name: "negative penalty", key: "WEIGHTING_PENALTY", value: "-1"},
		{name: "no workers", key: "ENGINE_WORKERS", value: "0"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			t.Setenv(tt.key, tt.value)
			require.NoError(t, ReadConfig())

			_, err := LoadConfig()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(EncoderConfig{Profile: "car", SpeedBits: 0, SpeedFactor: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "SpeedBits")

	assert.NoError(t, ValidateStruct(EncoderConfig{Profile: "car", SpeedBits: 5, SpeedFactor: 5}))
}

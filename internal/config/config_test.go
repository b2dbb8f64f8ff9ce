package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.Debug)
	require.Equal(t, 1.0, cfg.PathScale)
	require.True(t, cfg.ShapeHit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHUMWAY_DEBUG", "true")
	t.Setenv("SHUMWAY_PATH_SCALE", "0.05")
	t.Setenv("SHUMWAY_SHAPE_HIT", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.Equal(t, 0.05, cfg.PathScale)
	require.False(t, cfg.ShapeHit)
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("SHUMWAY_PATH_SCALE", "wide")

	_, err := Load()
	require.Error(t, err)
}

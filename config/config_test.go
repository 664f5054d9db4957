package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-star-raid/shooter"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envSeed, envScale, envMute, envMaxBullets, envMaxEnemies, envMaxParticles, envTUIFPS} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, c.Files)
	assert.Zero(t, c.Seed)
	assert.Equal(t, 1.0, c.Scale)
	assert.False(t, c.Mute)
	assert.Equal(t, 30, c.TUIFPS)
	assert.Equal(t, shooter.DefaultParams(), c.Params())
}

func TestLoadFromFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "GAME_RAND_SEED=42\nGAME_MUTE=true\nGAME_MAX_ENEMIES=8\nGAME_SCALE=2\n")
	t.Setenv(envMaxEnemies, "16")
	t.Setenv(envMaxParticles, "0")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, c.Files)
	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.Mute)
	assert.Equal(t, 2.0, c.Scale)
	assert.Equal(t, 16, c.Limits.Enemies, "process environment wins")
	assert.Equal(t, 0, c.Params().Limits.Particles)
	assert.Equal(t, shooter.DefaultParams().Limits.Bullets, c.Limits.Bullets)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	for _, tt := range []struct {
		key, value string
	}{
		{envSeed, "abc"},
		{envScale, "0"},
		{envMute, "maybe"},
		{envTUIFPS, "-1"},
		{envMaxBullets, "-5"},
		{envMaxParticles, "many"},
	} {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestRandomIsSeeded(t *testing.T) {
	c := &Config{Seed: 7}
	assert.Equal(t, c.Random().Int63(), c.Random().Int63())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultBufferSize, cfg.Inference.BufferSize)
	assert.Equal(t, DefaultDelimiter, cfg.Inference.Delimiter)
	assert.Equal(t, OverflowFatal, cfg.Inference.OverflowPolicy)
}

func TestSampleWindow(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultBufferSize/10, cfg.Inference.SampleWindow())

	cfg.Inference.BufferSize = 50
	assert.Equal(t, 5, cfg.Inference.SampleWindow())
}

func TestValidateRejectsTinyBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inference.BufferSize = 9 // sample window would be empty
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyDelimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inference.Delimiter = ""
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inference.OverflowPolicy = "shrug"
	require.Error(t, cfg.Validate())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Inference.Delimiter = ";"
	cfg.Inference.OverflowPolicy = OverflowAny
	require.NoError(t, Save(path, cfg))

	var loaded Config
	require.NoError(t, Load(path, &loaded))
	assert.Equal(t, ";", loaded.Inference.Delimiter)
	assert.Equal(t, OverflowAny, loaded.Inference.OverflowPolicy)
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("STRATA_TEST_DELIM", "|")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "inference:\n  buffer_size: 100\n  delimiter: \"${STRATA_TEST_DELIM}\"\n  overflow_policy: fatal\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg Config
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "|", cfg.Inference.Delimiter)
}

func TestLoadWithOverridesDefaults(t *testing.T) {
	cfg, err := LoadWithOverrides("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBufferSize, cfg.Inference.BufferSize)
	assert.Equal(t, OverflowFatal, cfg.Inference.OverflowPolicy)
}

func TestLoadWithOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "inference:\n  buffer_size: 200\n  delimiter: \";\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadWithOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Inference.BufferSize)
	assert.Equal(t, ";", cfg.Inference.Delimiter)
	// Unset keys fall back to defaults.
	assert.Equal(t, OverflowFatal, cfg.Inference.OverflowPolicy)
}

func TestLoadWithOverridesMissingFile(t *testing.T) {
	_, err := LoadWithOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

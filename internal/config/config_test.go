package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/scenario"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatConsole, cfg.Log.Format)
	assert.Empty(t, cfg.Scenario.Steps)
	assert.Equal(t, scenario.Default(), cfg.Steps())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log:
  level: debug
  format: json
scenario:
  steps:
    - op: insert
      key: abc
      type: int
      value: 123
    - op: search
      key: abc
      type: int
      version: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)

	steps := cfg.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, scenario.OpInsert, steps[0].Op)
	assert.Equal(t, "abc", steps[0].Key)
	assert.Equal(t, scenario.TypeInt, steps[0].Type)
	assert.EqualValues(t, 123, steps[0].Value)
	assert.Nil(t, steps[0].Version)
	assert.Equal(t, scenario.OpSearch, steps[1].Op)
	require.NotNil(t, steps[1].Version)
	assert.Equal(t, 1, *steps[1].Version)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PTRIE_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_EmptyEnvKeepsDefaultLevel(t *testing.T) {
	t.Setenv("PTRIE_LOG_LEVEL", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EmptyLevelInFileIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: \"\"\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid console",
			cfg:  Config{Log: LogConfig{Level: "debug", Format: FormatConsole}},
		},
		{
			name: "valid json",
			cfg:  Config{Log: LogConfig{Level: "error", Format: FormatJSON}},
		},
		{
			name:    "unknown level",
			cfg:     Config{Log: LogConfig{Level: "loud", Format: FormatJSON}},
			wantErr: true,
		},
		{
			name:    "empty level",
			cfg:     Config{Log: LogConfig{Level: "", Format: FormatConsole}},
			wantErr: true,
		},
		{
			name:    "unknown format",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "xml"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

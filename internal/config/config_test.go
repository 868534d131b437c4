package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Extensions)
	assert.Empty(t, cfg.ExcludeDirs)
	assert.Greater(t, cfg.Workers, 0)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Output.Progress)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "srcmetrics.toml",
			content: `extensions = ["rs", "go"]
exclude_dirs = ["target"]
workers = 3

[output]
format = "json"
color = false
`,
		},
		{
			name: "srcmetrics.yaml",
			content: `extensions: [rs, go]
exclude_dirs: [target]
workers: 3
output:
  format: json
  color: false
`,
		},
		{
			name:    "srcmetrics.json",
			content: `{"extensions": ["rs", "go"], "exclude_dirs": ["target"], "workers": 3, "output": {"format": "json", "color": false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.name, tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, []string{"rs", "go"}, cfg.Extensions)
			assert.Equal(t, []string{"target"}, cfg.ExcludeDirs)
			assert.Equal(t, 3, cfg.Workers)
			assert.Equal(t, "json", cfg.Output.Format)
			assert.False(t, cfg.Output.Color)
			assert.False(t, cfg.Output.Progress)
		})
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "srcmetrics.toml", `extensions = ["py"]`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"py"}, cfg.Extensions)
	assert.Equal(t, DefaultConfig().Workers, cfg.Workers)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "srcmetrics.json", `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, path, err := LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)

	hidden := writeConfig(t, dir, ".srcmetrics.yaml", "workers: 2\n")
	cfg, path, err = LoadOrDefault("", dir)
	require.NoError(t, err)
	assert.Equal(t, hidden, path)
	assert.Equal(t, 2, cfg.Workers)

	explicit := writeConfig(t, t.TempDir(), "custom.toml", "workers = 5\n")
	cfg, path, err = LoadOrDefault(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, 5, cfg.Workers)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Output.Format = "xml"
	assert.Error(t, cfg.Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottodish/internal/extract"
	"github.com/hammamikhairi/ottodish/internal/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ottodish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "normal", cfg.Log.Level)
	assert.Equal(t, "ru-v1", cfg.Template.Vocabulary)
	assert.Equal(t, extract.BulletPrefix, cfg.BulletMode())
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.Validate)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "*.txt", cfg.Watch.Pattern)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, logger.LevelNormal, cfg.LogLevel())
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
log:
  level: verbose
template:
  vocabulary: en-v1
  bullet_mode: replace_all
output:
  format: json
  validate: true
batch:
  workers: 8
watch:
  debounce: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logger.LevelVerbose, cfg.LogLevel())
	assert.Equal(t, "en-v1", cfg.Template.Vocabulary)
	assert.Equal(t, extract.BulletReplaceAll, cfg.BulletMode())
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Validate)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "*.txt", cfg.Watch.Pattern, "unset keys keep defaults")
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\nbatch:\n  workers: 8\n")
	t.Setenv("OTTODISH_FORMAT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoadFromConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "batch:\n  workers: 2\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadDefersValidation(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\nbatch:\n  workers: 0\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)

	// An override can still repair the file before validation.
	cfg.Batch.Workers = 2
	cfg.Output.Format = "yml"
	assert.NoError(t, cfg.Validate())

	cfg.Output.Format = "xml"
	cfg.Batch.Workers = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:      LogConfig{Level: "normal"},
			Template: TemplateConfig{Vocabulary: "ru-v1", BulletMode: "prefix"},
			Output:   OutputConfig{Format: "text"},
			Batch:    BatchConfig{Workers: 1},
			Watch:    WatchConfig{Pattern: "*.txt"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	for _, f := range []string{"yml", "md", "JSON", "Markdown"} {
		t.Run("format alias "+f, func(t *testing.T) {
			cfg := valid()
			cfg.Output.Format = f
			assert.NoError(t, cfg.Validate())
		})
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "chatty" }},
		{"vocabulary", func(c *Config) { c.Template.Vocabulary = " " }},
		{"bullet mode", func(c *Config) { c.Template.BulletMode = "strip" }},
		{"format", func(c *Config) { c.Output.Format = "html" }},
		{"format alias typo", func(c *Config) { c.Output.Format = "ymll" }},
		{"width", func(c *Config) { c.Output.Width = -1 }},
		{"workers", func(c *Config) { c.Batch.Workers = 0 }},
		{"pattern", func(c *Config) { c.Watch.Pattern = "[" }},
		{"debounce", func(c *Config) { c.Watch.Debounce = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestUsageListsEnv(t *testing.T) {
	assert.Contains(t, Usage(), "OTTODISH_WORKERS")
}

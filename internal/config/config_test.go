package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 3, cfg.Rewards.TasksPerStage)

	assert.Equal(t, "orange", cfg.UI.Theme)
	require.NotNil(t, cfg.UI.CompleteDelayMs)
	assert.Equal(t, 1000, *cfg.UI.CompleteDelayMs)
	assert.Equal(t, time.Second, cfg.CompleteDelay())
	assert.True(t, cfg.ShouldSeedSampleTask())

	assert.NotNil(t, cfg.Categories)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Logging.File)

	require.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	seed := false
	cfg := &Config{
		UI:      UIConfig{Theme: "blue", SeedSampleTask: &seed},
		Logging: LoggingConfig{Level: "debug"},
	}

	merged := MergeWithDefaults(cfg)

	assert.Equal(t, "blue", merged.UI.Theme, "explicit values win")
	assert.False(t, merged.ShouldSeedSampleTask(), "explicit false is kept")
	assert.Equal(t, "debug", merged.Logging.Level)

	assert.Equal(t, 3, merged.Rewards.TasksPerStage)
	assert.Equal(t, time.Second, merged.CompleteDelay())
	assert.NotEmpty(t, merged.Logging.File)
	assert.NotNil(t, merged.Categories)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().UI, cfg.UI)
}

func TestLoadConfig_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `version: 1
rewards:
  tasksPerStage: 5
ui:
  theme: purple
  seedSampleTask: false
categories:
  - Work
  - Home
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := LoadConfig(dir, "")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rewards.TasksPerStage)
	assert.Equal(t, "purple", cfg.UI.Theme)
	assert.False(t, cfg.ShouldSeedSampleTask())
	assert.Equal(t, time.Second, cfg.CompleteDelay(), "missing values come from defaults")
	assert.Equal(t, []string{"Work", "Home"}, cfg.Categories)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: green\n"), 0644))

	cfg, err := LoadConfig(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.UI.Theme)

	_, err = LoadConfig(dir, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "a missing explicit config is an error")
}

func TestMergeWithDefaults_KeepsZeroDelay(t *testing.T) {
	zero := 0
	merged := MergeWithDefaults(&Config{UI: UIConfig{CompleteDelayMs: &zero}})

	assert.Equal(t, time.Duration(0), merged.CompleteDelay(), "explicit 0 is kept")
}

func TestLoadConfig_ZeroDelay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("ui:\n  completeDelayMs: 0\n"), 0644))

	cfg, err := LoadConfig(dir, "")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.CompleteDelay())
}

func TestSaveThenLoad_CompleteDelay(t *testing.T) {
	for _, d := range []time.Duration{0, 500 * time.Millisecond, 2 * time.Second} {
		t.Run(d.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SetCompleteDelay(d)

			data, err := MarshalVersionedConfig(cfg)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, data, 0644))

			loaded, err := LoadConfig(t.TempDir(), path)
			require.NoError(t, err)
			assert.Equal(t, d, loaded.CompleteDelay())
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "ui: [theme"},
		{"negative threshold", "rewards:\n  tasksPerStage: -2\n"},
		{"negative delay", "ui:\n  completeDelayMs: -5\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"future version", "version: 99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0644))

			_, err := LoadConfig(dir, "")
			assert.Error(t, err)
		})
	}
}

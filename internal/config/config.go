package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/riordanpawley/grove/internal/reward"
)

// FileName is the project-local config file looked up in the working directory
const FileName = ".grove.yaml"

const defaultCompleteDelayMs = 1000

// Config represents the full grove configuration
type Config struct {
	Version    int           `yaml:"version"`
	Rewards    RewardsConfig `yaml:"rewards"`
	UI         UIConfig      `yaml:"ui"`
	Categories []string      `yaml:"categories,omitempty"`
	Logging    LoggingConfig `yaml:"logging"`
}

// RewardsConfig contains tree growth settings
type RewardsConfig struct {
	TasksPerStage int `yaml:"tasksPerStage"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	Theme           string `yaml:"theme"`
	CompleteDelayMs *int   `yaml:"completeDelayMs,omitempty"` // nil when unset; 0 completes immediately
	SeedSampleTask  *bool  `yaml:"seedSampleTask,omitempty"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	seed := true
	delayMs := defaultCompleteDelayMs

	return &Config{
		Version: CurrentVersion,
		Rewards: RewardsConfig{
			TasksPerStage: reward.DefaultTasksPerStage,
		},
		UI: UIConfig{
			Theme:           "orange",
			CompleteDelayMs: &delayMs,
			SeedSampleTask:  &seed,
		},
		Categories: []string{},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, ".grove", "grove.log"),
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. explicit path (must exist)
// 2. .grove.yaml in dir
// 3. Defaults
func LoadConfig(dir, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicitPath == "" && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load is a convenience function that loads config from the current directory
func Load(explicitPath string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd, explicitPath)
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	cfg.Version = CurrentVersion

	if cfg.Rewards.TasksPerStage == 0 {
		cfg.Rewards.TasksPerStage = defaults.Rewards.TasksPerStage
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.CompleteDelayMs == nil {
		cfg.UI.CompleteDelayMs = defaults.UI.CompleteDelayMs
	}
	if cfg.UI.SeedSampleTask == nil {
		cfg.UI.SeedSampleTask = defaults.UI.SeedSampleTask
	}

	if cfg.Categories == nil {
		cfg.Categories = defaults.Categories
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaults.Logging.File
	}

	return cfg
}

// Validate rejects values that cannot be used
func (c *Config) Validate() error {
	if c.Rewards.TasksPerStage < 1 {
		return fmt.Errorf("rewards.tasksPerStage must be at least 1, got %d", c.Rewards.TasksPerStage)
	}
	if c.UI.CompleteDelayMs != nil && *c.UI.CompleteDelayMs < 0 {
		return fmt.Errorf("ui.completeDelayMs must not be negative, got %d", *c.UI.CompleteDelayMs)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses logging.level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// CompleteDelay returns the cosmetic delay before a completed row leaves the list
func (c *Config) CompleteDelay() time.Duration {
	ms := defaultCompleteDelayMs
	if c.UI.CompleteDelayMs != nil {
		ms = *c.UI.CompleteDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SetCompleteDelay stores d as ui.completeDelayMs
func (c *Config) SetCompleteDelay(d time.Duration) {
	ms := int(d / time.Millisecond)
	c.UI.CompleteDelayMs = &ms
}

// ShouldSeedSampleTask reports whether a sample task is created at startup
func (c *Config) ShouldSeedSampleTask() bool {
	return c.UI.SeedSampleTask == nil || *c.UI.SeedSampleTask
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: the flat tasksPerGrowthStage key moved under rewards
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			if old, ok := data["tasksPerGrowthStage"]; ok {
				rewards, _ := data["rewards"].(map[string]interface{})
				if rewards == nil {
					rewards = map[string]interface{}{}
				}
				if _, set := rewards["tasksPerStage"]; !set {
					rewards["tasksPerStage"] = old
				}
				data["rewards"] = rewards
				delete(data, "tasksPerGrowthStage")
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	// First, parse as a raw map to get version
	rawConfig := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Detect version (0 if not present = legacy config)
	version := 0
	if v, ok := rawConfig["version"].(int); ok {
		version = v
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	// Apply migrations if needed
	if version < CurrentVersion {
		migrated, err := migrateConfig(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
		rawConfig = migrated
	}

	out, err := yaml.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode migrated config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(out, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// migrateConfig applies migrations from fromVersion up to CurrentVersion
func migrateConfig(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	current := fromVersion
	for _, m := range migrations {
		if m.FromVersion != current {
			continue
		}
		var err error
		data, err = m.Migrate(data)
		if err != nil {
			return nil, fmt.Errorf("migration %d -> %d: %w", m.FromVersion, m.ToVersion, err)
		}
		current = m.ToVersion
	}
	if current != CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d", fromVersion)
	}
	return data, nil
}

// MarshalVersionedConfig encodes cfg as YAML with the current version
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	c := *cfg
	c.Version = CurrentVersion
	return yaml.Marshal(&c)
}

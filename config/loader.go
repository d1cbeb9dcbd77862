package config

import (
	"fmt"
)

// Load loads configuration with priority: config file > defaults.
//
// configPath may be empty, in which case the standard locations are
// searched; a missing config file is not an error. Command-line flags are
// applied on top by the cmd layer after Load returns.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}

	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

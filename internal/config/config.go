package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration. Values come from an optional
// YAML file, then environment variables override.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	StorePath  string `yaml:"store_path"`
}

// Load reads configuration from path (may be empty or missing) and
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		ListenAddr: ":8080",
		StorePath:  "medblocks.db",
	}

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Missing file means defaults.
		default:
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("STORE_PATH"); v != "" {
		cfg.StorePath = v
	}

	return cfg, nil
}

// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: environment variables > config file > embedded bytes > defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultInputPath is the input converted when no path is given on the command line.
const DefaultInputPath = "DA_Config.obk"

// Config holds all bin2h configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig holds input file settings.
type InputConfig struct {
	DefaultPath string `yaml:"default_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			DefaultPath: DefaultInputPath,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	candidates := append([]string{"bin2h.yaml"}, configSearchPaths()...)
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain:
// env vars > external YAML file > embedded bytes > defaults.
//
// An optional configPath argument controls external-file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value  → use that path ("" means no external file)
func LoadLayered(embedded []byte, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	if len(embedded) > 0 {
		if err := yaml.Unmarshal(embedded, cfg); err != nil {
			return nil, fmt.Errorf("parsing embedded config: %w", err)
		}
	}

	var filePath string
	if len(configPath) > 0 {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file %s: %w", filePath, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("BIN2H_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("BIN2H_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
	if input := os.Getenv("BIN2H_DEFAULT_INPUT"); input != "" {
		cfg.Input.DefaultPath = input
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Input.DefaultPath == "" {
		return fmt.Errorf("input.default_path is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	defaultComponentsFile = "config.txt"
	defaultLogLevel       = "info"
	defaultLogEncoding    = "console"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validLogEncodings = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Config aggregates runtime settings resolved from multiple sources.
// Precedence: CLI flags > YAML settings > Defaults
type Config struct {
	ComponentsFile string `yaml:"components_file"`
	LogLevel       string `yaml:"log_level"`
	LogEncoding    string `yaml:"log_encoding"`
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	ComponentsFile string      `yaml:"components_file"`
	Logging        yamlLogging `yaml:"logging"`
}

// yamlLogging represents the logging section in YAML.
type yamlLogging struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	SettingsFile   string
	ComponentsFile *string
	LogLevel       *string
	LogEncoding    *string
}

// Load resolves settings with precedence CLI flags > YAML settings > Defaults.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.SettingsFile != "" {
		yamlCfg, err := loadFromFile(overrides.SettingsFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML settings: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ComponentsFile: defaultComponentsFile,
		LogLevel:       defaultLogLevel,
		LogEncoding:    defaultLogEncoding,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML settings to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if v := strings.TrimSpace(yamlCfg.ComponentsFile); v != "" {
		cfg.ComponentsFile = v
	}
	if v := strings.TrimSpace(yamlCfg.Logging.Level); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(yamlCfg.Logging.Encoding); v != "" {
		cfg.LogEncoding = strings.ToLower(v)
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ComponentsFile != nil && *overrides.ComponentsFile != "" {
		cfg.ComponentsFile = *overrides.ComponentsFile
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}
	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = strings.ToLower(*overrides.LogEncoding)
	}
}

// validateConfig reports every problem with the final settings at once.
func validateConfig(cfg Config) error {
	var err error
	if strings.TrimSpace(cfg.ComponentsFile) == "" {
		err = multierr.Append(err, fmt.Errorf("components file cannot be empty"))
	}
	if _, ok := validLogLevels[cfg.LogLevel]; !ok {
		err = multierr.Append(err, fmt.Errorf("unsupported log level %q", cfg.LogLevel))
	}
	if _, ok := validLogEncodings[cfg.LogEncoding]; !ok {
		err = multierr.Append(err, fmt.Errorf("unsupported log encoding %q", cfg.LogEncoding))
	}
	return err
}

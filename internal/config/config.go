// Package config loads pathfind's yaml configuration: global options plus
// named search profiles that bundle roots and filters for reuse from the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up when --config is not given.
const DefaultConfigFile = ".pathfind.yaml"

// Profile is a named, reusable search: the roots to look in and the filters
// every entry must pass. All filter lists are ANDed together the same way the
// corresponding CLI flags are.
type Profile struct {
	// Dirs are the root directories to search. Empty means the current
	// working directory.
	Dirs []string `yaml:"dirs"`

	// Names matches entries whose basename equals any listed name.
	Names []string `yaml:"names"`

	// Globs matches entries whose basename matches any listed glob.
	Globs []string `yaml:"globs"`

	// Regexps matches entries whose basename matches any listed expression.
	Regexps []string `yaml:"regexps"`

	// Extensions matches entries by file extension (leading dot optional).
	Extensions []string `yaml:"extensions"`

	// Type restricts the entry kind: "f" for files, "d" for directories,
	// empty for both.
	Type string `yaml:"type"`
}

// Config represents pathfind configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency bounds how many roots are listed concurrently
	// (0 = unbounded)
	MaxConcurrency int `yaml:"max_concurrency"`

	// Profiles holds named searches selectable with --profile
	Profiles map[string]Profile `yaml:"profiles"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		MaxConcurrency: 0,
		Profiles:       map[string]Profile{},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.MaxConcurrency != 0 {
		cfg.MaxConcurrency = fileCfg.MaxConcurrency
	}
	for name, profile := range fileCfg.Profiles {
		cfg.Profiles[name] = profile
	}

	return cfg, nil
}

// Profile returns the named profile, or an error listing the names that do
// exist when it is unknown.
func (c *Config) Profile(name string) (Profile, error) {
	profile, ok := c.Profiles[name]
	if !ok {
		names := make([]string, 0, len(c.Profiles))
		for n := range c.Profiles {
			names = append(names, n)
		}
		return Profile{}, fmt.Errorf("unknown profile %q (defined: %v)", name, names)
	}
	return profile, nil
}

// Package config loads the optional tim.yaml tool configuration.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/timsite/tim/internal/errors"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "tim.yaml"

// Config represents the tool configuration. Per-site settings live in each
// site's _config.txt, not here.
type Config struct {
	// SitesDir is the folder holding one directory per site.
	SitesDir string `yaml:"sites_dir"`
	// ExampleDir is copied into every new site.
	ExampleDir string        `yaml:"example_dir"`
	LogLevel   LogLevel      `yaml:"log_level,omitempty"`
	Preview    PreviewConfig `yaml:"preview"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Port     int           `yaml:"port"`
	Debounce time.Duration `yaml:"debounce"`
}

// MetricsConfig configures the metrics export of one-shot builds.
type MetricsConfig struct {
	// Textfile, when set, receives the build metrics in Prometheus text format.
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads configPath, expanding ${VAR} references from the environment
// (after .env files are loaded) before parsing. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	// #nosec G304 -- the config path is chosen by the user.
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Fatal().
			Build()
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
				WithContext("path", configPath).
				Fatal().
				Build()
		}
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

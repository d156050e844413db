package config

import "time"

const (
	defaultSitesDir        = "."
	defaultExampleDir      = "data/example"
	defaultPreviewPort     = 1316
	defaultPreviewDebounce = 300 * time.Millisecond
)

// applyDefaults fills unset fields. A zero debounce is treated as unset.
func applyDefaults(cfg *Config) {
	if cfg.SitesDir == "" {
		cfg.SitesDir = defaultSitesDir
	}
	if cfg.ExampleDir == "" {
		cfg.ExampleDir = defaultExampleDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelInfo
	} else {
		cfg.LogLevel = NormalizeLogLevel(string(cfg.LogLevel))
	}
	if cfg.Preview.Port == 0 {
		cfg.Preview.Port = defaultPreviewPort
	}
	if cfg.Preview.Debounce == 0 {
		cfg.Preview.Debounce = defaultPreviewDebounce
	}
}

package config

import (
	"fmt"

	"github.com/timsite/tim/internal/errors"
)

// Validate checks a configuration after defaults were applied.
func Validate(cfg *Config) error {
	if cfg.Preview.Port < 1 || cfg.Preview.Port > 65535 {
		return errors.ConfigError(fmt.Sprintf("invalid preview port: %d", cfg.Preview.Port)).
			WithContext("field", "preview.port").
			Build()
	}
	if cfg.Preview.Debounce < 0 {
		return errors.ConfigError(fmt.Sprintf("invalid preview debounce: %s", cfg.Preview.Debounce)).
			WithContext("field", "preview.debounce").
			Build()
	}
	return nil
}

package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/timsite/tim/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads KEY=VALUE pairs from .env and .env.local when present.
// Existing process environment variables are not overwritten, and a value
// from .env wins over the same key in .env.local.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Environment file was NOT loaded", logfields.Path(name), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(name))
	}
}

package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PlayerTablePath string
	Vlr             VlrConfig
	Log             LogConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		PlayerTablePath: envOrDefault(envPlayerTable, defaultPlayerTable),
		Vlr:             loadVlr(),
		Log:             loadLog(),
		Metrics:         loadMetrics(),
	}
}

// LoadDotEnv populates unset environment variables from the given files,
// defaulting to ./.env. Missing files are ignored; variables already set in
// the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

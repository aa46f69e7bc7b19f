package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// config holds CLI-level settings. Resolution order: built-in defaults, the
// TOML file (when given or present), `.env` plus process environment, then
// command-line flags.
type config struct {
	DataDir       string    `toml:"data_dir"`
	URL           string    `toml:"url"`
	CacheTemplate string    `toml:"cache_template"`
	Log           logConfig `toml:"log"`
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func defaultCLIConfig() config {
	return config{
		DataDir:       "data",
		CacheTemplate: "data_%s.dmp.gz",
		Log:           logConfig{Level: "info", Format: "text"},
	}
}

// loadConfig reads the optional TOML file and applies environment
// overrides. A missing file is only an error when the path was given
// explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultCLIConfig()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults only
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// .env is optional; ignore absence.
	_ = godotenv.Load()

	applyEnv(&cfg.DataDir, "NEHODY_DATA_DIR")
	applyEnv(&cfg.URL, "NEHODY_URL")
	applyEnv(&cfg.CacheTemplate, "NEHODY_CACHE_TEMPLATE")
	applyEnv(&cfg.Log.Level, "NEHODY_LOG_LEVEL")
	applyEnv(&cfg.Log.Format, "NEHODY_LOG_FORMAT")

	return cfg, nil
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

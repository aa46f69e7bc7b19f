package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"nehody"
)

// commandContext resolves configuration lazily so that commands which never
// touch the catalog (help, completion) skip config loading entirely.
type commandContext struct {
	configFlag  *string
	dataDirFlag *string
	urlFlag     *string

	cfg     *config
	logger  *slog.Logger
	catalog *nehody.Catalog
}

func newCommandContext(configFlag, dataDirFlag, urlFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		dataDirFlag: dataDirFlag,
		urlFlag:     urlFlag,
	}
}

// ensureConfig loads config once and builds the logger.
func (ctx *commandContext) ensureConfig() (*config, error) {
	if ctx.cfg != nil {
		return ctx.cfg, nil
	}

	path := *ctx.configFlag
	explicit := path != ""
	if !explicit {
		path = "nehody.toml"
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if *ctx.dataDirFlag != "" {
		cfg.DataDir = *ctx.dataDirFlag
	}
	if *ctx.urlFlag != "" {
		cfg.URL = *ctx.urlFlag
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	ctx.cfg = &cfg
	ctx.logger = logger
	return ctx.cfg, nil
}

// ensureCatalog builds the catalog from the resolved config.
func (ctx *commandContext) ensureCatalog() (*nehody.Catalog, error) {
	if ctx.catalog != nil {
		return ctx.catalog, nil
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	opts := []nehody.Option{
		nehody.WithDataDir(cfg.DataDir),
		nehody.WithCacheTemplate(cfg.CacheTemplate),
		nehody.WithLogger(ctx.logger),
	}
	if cfg.URL != "" {
		opts = append(opts, nehody.WithURL(cfg.URL))
	}
	ctx.catalog = nehody.NewCatalog(opts...)
	return ctx.catalog, nil
}

// newLogger builds a slog logger on stderr from the log config.
func newLogger(cfg logConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("log level: unsupported value %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "", "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", cfg.Format)
	}
	return slog.New(handler), nil
}

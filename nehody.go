// Package nehody ingests the periodically published archives of Czech
// traffic-accident records, extracts per-region typed tables from the CSV
// entries inside them, and memoizes the result across an in-process map and
// compressed on-disk artifacts so repeated requests avoid re-parsing.
package nehody

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultURL is the upstream listing page the fetcher scrapes for archive
// links.
const DefaultURL = "https://ehw.fit.vutbr.cz/izv/"

// Config holds catalog construction parameters. Every path, template and
// collaborator is explicit; the package keeps no ambient state.
type Config struct {
	DataDir       string       // folder for downloaded archives and cache artifacts
	URL           string       // upstream listing page
	CacheTemplate string       // per-region artifact name, must contain one %s
	Logger        *slog.Logger // defaults to slog.Default()
	HTTPClient    *http.Client // defaults to a shared client with a timeout
}

// Option is a functional option for configuring a Catalog.
type Option func(*Config)

// WithDataDir sets the folder holding archives and cache artifacts.
func WithDataDir(dir string) Option {
	return func(c *Config) { c.DataDir = dir }
}

// WithURL sets the upstream listing page.
func WithURL(url string) Option {
	return func(c *Config) { c.URL = url }
}

// WithCacheTemplate sets the per-region cache artifact name template.
func WithCacheTemplate(template string) Option {
	return func(c *Config) { c.CacheTemplate = template }
}

// WithLogger sets the logger used by all components.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithHTTPClient sets the HTTP client used by the fetch collaborator.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) { c.HTTPClient = client }
}

func defaultConfig() *Config {
	return &Config{
		DataDir:       "data",
		URL:           DefaultURL,
		CacheTemplate: "data_%s.dmp.gz",
	}
}

// Catalog orchestrates archive presence, per-region parsing and caching, and
// merging of regions into one combined table. Intended for use from a single
// goroutine; all operations block.
type Catalog struct {
	config *Config
	cache  *regionCache
	fetch  *fetcher
	logger *slog.Logger
}

// NewCatalog creates a catalog.
//
//	cat := nehody.NewCatalog(nehody.WithDataDir("/var/lib/nehody"))
//	header, table, err := cat.GetList("PHA", "JHM")
func NewCatalog(opts ...Option) *Catalog {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient
	}

	return &Catalog{
		config: cfg,
		cache:  newRegionCache(cfg.DataDir, cfg.CacheTemplate, cfg.Logger),
		fetch:  &fetcher{client: cfg.HTTPClient, url: cfg.URL, logger: cfg.Logger},
		logger: cfg.Logger,
	}
}

// GetList returns the fixed 65-name header and the row-wise merge of the
// requested regions' tables. With no arguments all 14 regions are merged.
// Unknown region codes log one warning each and contribute nothing; they
// are absence, not an empty table. Infrastructure failures (transport,
// archive, disk) abort the whole operation.
func (c *Catalog) GetList(regions ...string) ([]string, *Table, error) {
	if len(regions) == 0 {
		regions = allRegions
	}

	var parts []*Table
	for _, region := range regions {
		t, err := c.cache.get(region, c.ParseRegionData)
		if err != nil {
			return nil, nil, err
		}
		if t == nil {
			continue // unknown region, already warned
		}
		parts = append(parts, t)
	}

	merged, err := Concat(parts...)
	if err != nil {
		return nil, nil, fmt.Errorf("merging regions: %w", err)
	}
	return Header(), merged, nil
}

// ParseRegionData parses one region's rows out of every archive in the data
// folder whose name matches the archive pattern, downloading the archives
// first when none are present. Contributions from archives that lack the
// region's CSV entry are empty and excluded from the concatenation. An
// unknown region code logs a warning and returns a nil table with no error.
func (c *Catalog) ParseRegionData(region string) (*Table, error) {
	if _, ok := regionFiles[region]; !ok {
		if hint := SuggestRegion(region); hint != "" {
			c.logger.Warn("unknown region code", "region", region, "did_you_mean", hint)
		} else {
			c.logger.Warn("unknown region code", "region", region)
		}
		return nil, nil
	}

	archives, err := c.localArchives()
	if err != nil {
		return nil, err
	}
	if len(archives) == 0 {
		if err := c.DownloadData(); err != nil {
			return nil, err
		}
		if archives, err = c.localArchives(); err != nil {
			return nil, err
		}
	}

	var parts []*Table
	for _, name := range archives {
		t, err := parseArchive(name, region, c.logger)
		if err != nil {
			return nil, err
		}
		if t.Rows() == 0 {
			continue
		}
		parts = append(parts, t)
	}

	merged, err := Concat(parts...)
	if err != nil {
		return nil, fmt.Errorf("concatenating archives for %s: %w", region, err)
	}
	return merged, nil
}

// DownloadData scrapes the listing page, selects the latest archive per
// period and downloads any that are not already present locally.
func (c *Catalog) DownloadData() error {
	if err := os.MkdirAll(c.config.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	links, err := c.fetch.links()
	if err != nil {
		return err
	}

	for _, name := range LatestArchives(links) {
		if _, err := c.fetch.download(name, c.config.DataDir); err != nil {
			return err
		}
	}
	return nil
}

// localArchives lists the full paths of archive files already in the data
// folder, in directory order.
func (c *Catalog) localArchives() ([]string, error) {
	entries, err := os.ReadDir(c.config.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !MatchesArchive(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(c.config.DataDir, e.Name()))
	}
	return paths, nil
}

// CachePath returns the on-disk cache artifact path for a region, whether or
// not the artifact exists. Deleting the file is the supported way to force a
// re-parse.
func (c *Catalog) CachePath(region string) string {
	return c.cache.path(region)
}

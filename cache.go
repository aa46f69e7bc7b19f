package nehody

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// cacheEntry is the gob form of a persisted region table: the shared header
// plus the column vectors.
type cacheEntry struct {
	Header []string
	Cols   []Column
}

// regionCache memoizes per-region tables across three tiers: an in-process
// map, a compressed gob artifact on disk, and a cold parse supplied by the
// caller. Artifacts have no TTL and are never rewritten while present;
// deleting the file is the only invalidation.
type regionCache struct {
	mu       sync.Mutex
	mem      map[string]*Table
	dir      string
	template string // artifact name template, e.g. "data_%s.dmp.gz"
	logger   *slog.Logger
}

func newRegionCache(dir, template string, logger *slog.Logger) *regionCache {
	return &regionCache{
		mem:      make(map[string]*Table),
		dir:      dir,
		template: template,
		logger:   logger,
	}
}

// path returns the artifact path for a region.
func (rc *regionCache) path(region string) string {
	return filepath.Join(rc.dir, fmt.Sprintf(rc.template, region))
}

// get returns the memoized table for a region, consulting memory, then the
// disk artifact, then the parse callback. A disk hit also populates the
// memory tier; a fresh parse is persisted to disk but returned directly,
// so it reaches memory only through a later disk hit.
func (rc *regionCache) get(region string, parse func(string) (*Table, error)) (*Table, error) {
	rc.mu.Lock()
	t, ok := rc.mem[region]
	rc.mu.Unlock()
	if ok {
		return t, nil
	}

	path := rc.path(region)
	if _, err := os.Stat(path); err == nil {
		t, err := rc.load(path)
		if err != nil {
			return nil, fmt.Errorf("loading cache for %s: %w", region, err)
		}
		rc.logger.Debug("region cache disk hit", "region", region, "rows", t.Rows())
		rc.mu.Lock()
		rc.mem[region] = t
		rc.mu.Unlock()
		return t, nil
	}

	t, err := parse(region)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if err := rc.store(path, t); err != nil {
		return nil, fmt.Errorf("storing cache for %s: %w", region, err)
	}
	rc.logger.Debug("region cache populated", "region", region, "rows", t.Rows())
	return t, nil
}

// load reads a compressed gob artifact back into a table.
func (rc *regionCache) load(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	gz, err := gzip.NewReader(fh)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	defer gz.Close()

	var entry cacheEntry
	if err := gob.NewDecoder(gz).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &Table{Header: entry.Header, Cols: entry.Cols}, nil
}

// store writes a table as a compressed gob artifact. The write holds a file
// lock next to the artifact so concurrent processes serialize on the same
// region.
func (rc *regionCache) store(path string, t *Table) error {
	if err := os.MkdirAll(rc.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	b := new(bytes.Buffer)
	gz := gzip.NewWriter(b)
	if err := gob.NewEncoder(gz).Encode(cacheEntry{Header: t.Header, Cols: t.Cols}); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compressing: %w", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

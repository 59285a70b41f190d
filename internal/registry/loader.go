package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"entitymatch/internal/config"
	"entitymatch/internal/logging"
)

// ProgressFunc reports download progress. total is -1 when the source does
// not announce a content length.
type ProgressFunc func(downloaded, total int64)

// CacheStatus describes the on-disk dataset cache, consumed by the CLI to
// inform the user before a potentially large download is triggered.
type CacheStatus struct {
	Path        string
	Cached      bool
	SizeBytes   int64
	Age         time.Duration
	LastUpdated time.Time
	Fresh       bool
}

// Loader acquires the registry dataset and builds Tables. A download
// failure is an explicit, recoverable error: callers degrade rather than
// abort, and any stale cache file is left untouched.
type Loader struct {
	cfg    *config.Config
	logger *slog.Logger
	client *http.Client
}

// NewLoader creates a loader for the configured registry source.
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "registry"),
		client: &http.Client{Timeout: cfg.DownloadTimeout()},
	}
}

// CacheStatus inspects the cached dataset file.
func (l *Loader) CacheStatus() CacheStatus {
	status := CacheStatus{Path: l.cfg.CachePath()}
	info, err := os.Stat(status.Path)
	if err != nil {
		return status
	}
	status.Cached = true
	status.SizeBytes = info.Size()
	status.LastUpdated = info.ModTime()
	status.Age = time.Since(info.ModTime())
	status.Fresh = status.Age <= l.cfg.CacheMaxAge()
	return status
}

// Load returns the current table, downloading the dataset first when the
// cache is missing or older than the freshness window.
func (l *Loader) Load(ctx context.Context, progress ProgressFunc) (*Table, error) {
	if status := l.CacheStatus(); !status.Fresh {
		if status.Cached {
			l.logger.Info("registry cache is stale",
				logging.Duration("age", status.Age.Round(time.Hour)))
		} else {
			l.logger.Info("registry cache not found")
		}
		if err := l.Refresh(ctx, false, progress); err != nil {
			return nil, err
		}
	}
	return l.loadFromDisk()
}

// Refresh downloads the dataset to the cache path. The refresh holds a file
// lock so concurrent processes do not race on the same cache file, streams
// to a temporary file, and replaces the cache atomically. On any failure
// the existing cache file is left untouched. Unless force is set, a cache
// made fresh by another process while waiting on the lock is kept.
func (l *Loader) Refresh(ctx context.Context, force bool, progress ProgressFunc) error {
	cachePath := l.cfg.CachePath()
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(cachePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	// Another process may have refreshed while we waited on the lock.
	if status := l.CacheStatus(); !force && status.Fresh {
		l.logger.Debug("registry cache refreshed by another process")
		return nil
	}

	l.logger.Info("downloading registry dataset", logging.String("url", l.cfg.Registry.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Registry.URL, nil)
	if err != nil {
		return fmt.Errorf("build registry request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("download registry dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download registry dataset: unexpected status %d", resp.StatusCode)
	}

	tempPath := cachePath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}

	written, err := copyWithProgress(out, resp.Body, resp.ContentLength, progress)
	closeErr := out.Close()
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("stream registry dataset: %w", err)
	}
	if closeErr != nil {
		os.Remove(tempPath)
		return fmt.Errorf("flush temp cache file: %w", closeErr)
	}

	if err := os.Rename(tempPath, cachePath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace cache file: %w", err)
	}

	l.logger.Info("registry dataset downloaded",
		logging.Int64("bytes", written),
		logging.String("path", cachePath))
	return nil
}

func copyWithProgress(dst io.Writer, src io.Reader, total int64, progress ProgressFunc) (int64, error) {
	buf := make([]byte, 64*1024)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return written, writeErr
			}
			written += int64(n)
			if progress != nil {
				progress(written, total)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func (l *Loader) loadFromDisk() (*Table, error) {
	cachePath := l.cfg.CachePath()
	file, err := os.Open(cachePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("registry cache missing at %s", cachePath)
		}
		return nil, fmt.Errorf("open registry cache: %w", err)
	}
	defer file.Close()

	started := time.Now()
	entities, total, err := parseEntities(file, l.cfg.Registry.Jurisdiction)
	if err != nil {
		return nil, err
	}

	table := NewTable(entities)
	l.logger.Info("registry dataset loaded",
		logging.Int("rows_read", total),
		logging.Int("rows_in_jurisdiction", len(entities)),
		logging.Int("rows_loaded", table.Len()),
		logging.Int("terminal_dropped", len(entities)-table.Len()),
		logging.Int("prefix_keys", table.PrefixCount()),
		logging.Duration("elapsed", time.Since(started).Round(time.Millisecond)))
	return table, nil
}

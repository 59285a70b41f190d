package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Registry contains configuration for the authoritative business registry source.
type Registry struct {
	URL                    string `toml:"url"`
	Jurisdiction           string `toml:"jurisdiction"`
	CacheMaxAgeDays        int    `toml:"cache_max_age_days"`
	DownloadTimeoutSeconds int    `toml:"download_timeout_seconds"`
}

// Matching contains the entity-resolution thresholds. The values are
// empirically tuned; out-of-range settings fall back to defaults rather
// than failing validation outright.
type Matching struct {
	NameThreshold          int `toml:"name_threshold"`
	AddressThreshold       int `toml:"address_threshold"`
	MinNameSimilarity      int `toml:"min_name_similarity"`
	NameBucketTolerance    int `toml:"name_bucket_tolerance"`
	AddressBucketTolerance int `toml:"address_bucket_tolerance"`
	CityBlockZipCutoff     int `toml:"city_block_zip_cutoff"`
	Workers                int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for entitymatch.
//
// Sections by subsystem:
//   - Paths: data (cache + run history) and log directories
//   - Registry: dataset URL, jurisdiction filter, cache freshness, timeout
//   - Matching: fuzzy-match thresholds and worker count
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Registry Registry `toml:"registry"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/entitymatch/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved path, the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("entitymatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Registry.URL = strings.TrimSpace(c.Registry.URL)
	if c.Registry.URL == "" {
		c.Registry.URL = defaultRegistryURL
	}
	c.Registry.Jurisdiction = strings.ToUpper(strings.TrimSpace(c.Registry.Jurisdiction))
	if c.Registry.Jurisdiction == "" {
		c.Registry.Jurisdiction = defaultJurisdiction
	}
	if c.Registry.CacheMaxAgeDays <= 0 {
		c.Registry.CacheMaxAgeDays = defaultCacheMaxAgeDays
	}
	if c.Registry.DownloadTimeoutSeconds <= 0 {
		c.Registry.DownloadTimeoutSeconds = defaultDownloadTimeoutSeconds
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CachePath returns the on-disk location of the cached registry dataset.
func (c *Config) CachePath() string {
	return filepath.Join(c.Paths.DataDir, "registry_entities.csv")
}

// RunsDBPath returns the on-disk location of the run history database.
func (c *Config) RunsDBPath() string {
	return filepath.Join(c.Paths.DataDir, "runs.db")
}

// CacheMaxAge returns the registry cache freshness window as a duration.
func (c *Config) CacheMaxAge() time.Duration {
	return time.Duration(c.Registry.CacheMaxAgeDays) * 24 * time.Hour
}

// DownloadTimeout returns the registry download timeout as a duration.
func (c *Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Registry.DownloadTimeoutSeconds) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

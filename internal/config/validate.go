package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRegistry(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRegistry() error {
	parsed, err := url.Parse(c.Registry.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("registry.url is not a valid URL: %q", c.Registry.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("registry.url must be http or https, got %q", parsed.Scheme)
	}
	if strings.TrimSpace(c.Registry.Jurisdiction) == "" {
		return errors.New("registry.jurisdiction must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	for _, check := range []struct {
		name  string
		value int
	}{
		{"matching.name_threshold", c.Matching.NameThreshold},
		{"matching.address_threshold", c.Matching.AddressThreshold},
		{"matching.min_name_similarity", c.Matching.MinNameSimilarity},
	} {
		if check.value < 0 || check.value > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %d", check.name, check.value)
		}
	}
	if c.Matching.NameBucketTolerance < 0 || c.Matching.AddressBucketTolerance < 0 {
		return errors.New("matching bucket tolerances must not be negative")
	}
	if c.Matching.Workers < 0 {
		return errors.New("matching.workers must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}

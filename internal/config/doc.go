// Package config loads, defaults, and validates entitymatch configuration.
//
// Configuration lives in a TOML file. Lookup order is an explicit --config
// path, then ~/.config/entitymatch/config.toml, then entitymatch.toml in the
// working directory. Missing files fall back to repository defaults so the
// tool runs with zero configuration.
package config

package preflight

import (
	"context"

	"entitymatch/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config. The registry
// source check goes over the network, so callers supply a context.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDiskSpace("Data disk space", cfg.Paths.DataDir, minCacheBytes),
		CheckRegistrySource(ctx, cfg.Registry.URL),
	}
}

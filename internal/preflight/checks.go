package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// minCacheBytes is the free space needed for a dataset download plus the
// temp file it streams through first.
const minCacheBytes = 2 << 30

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable. A missing directory passes when its parent is
// writable, since the run creates it on demand.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			parent := strings.TrimSuffix(path, "/")
			if idx := strings.LastIndex(parent, "/"); idx > 0 {
				parent = parent[:idx]
			}
			if unix.Access(parent, unix.W_OK|unix.X_OK) == nil {
				return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
			}
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist and parent is not writable)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies that the filesystem holding path has at least
// minBytes free.
func CheckDiskSpace(name, path string, minBytes uint64) Result {
	statPath := path
	if _, err := os.Stat(statPath); os.IsNotExist(err) {
		statPath = "/"
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(statPath, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs %s: %v", statPath, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	detail := fmt.Sprintf("%.1f GiB free", float64(free)/(1<<30))
	if free < minBytes {
		return Result{Name: name, Detail: detail + fmt.Sprintf(" (need %.1f GiB)", float64(minBytes)/(1<<30))}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckRegistrySource verifies that the registry dataset URL answers a HEAD
// request. It uses a 10-second timeout and a single attempt.
func CheckRegistrySource(ctx context.Context, url string) Result {
	const name = "Registry source"
	if strings.TrimSpace(url) == "" {
		return Result{Name: name, Detail: "missing url"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, url, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%v)", err)}
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{Name: name, Detail: fmt.Sprintf("reachability check failed (%d)", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

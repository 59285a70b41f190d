package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := CheckDirectoryAccess("Data directory", dir); !result.Passed {
		t.Errorf("existing writable dir failed: %s", result.Detail)
	}

	missing := filepath.Join(dir, "not-yet-created")
	if result := CheckDirectoryAccess("Data directory", missing); !result.Passed {
		t.Errorf("creatable missing dir failed: %s", result.Detail)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("Data directory", file); result.Passed {
		t.Error("regular file should fail the directory check")
	}
}

func TestCheckDiskSpace(t *testing.T) {
	if result := CheckDiskSpace("Data disk space", t.TempDir(), 1); !result.Passed {
		t.Errorf("tiny minimum failed: %s", result.Detail)
	}
	if result := CheckDiskSpace("Data disk space", t.TempDir(), 1<<62); result.Passed {
		t.Error("absurd minimum should fail")
	}
}

func TestCheckRegistrySource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("check used %s, want HEAD", r.Method)
		}
	}))
	defer server.Close()

	if result := CheckRegistrySource(context.Background(), server.URL); !result.Passed {
		t.Errorf("reachable source failed: %s", result.Detail)
	}
	if result := CheckRegistrySource(context.Background(), ""); result.Passed {
		t.Error("empty url should fail")
	}

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()
	if result := CheckRegistrySource(context.Background(), failing.URL); result.Passed {
		t.Error("404 source should fail")
	}
}

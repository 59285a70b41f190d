package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"entitymatch/internal/config"
	"entitymatch/internal/logging"
)

const datasetCSV = "entityname,principaladdress1,principalcity,principalstate,principalzipcode,agentfirstname,agentmiddlename,agentlastname,agentorganizationname,entitystatus,entityformdate\n" +
	"Acme Plumbing LLC,123 Main Street,Denver,CO,80202,Jane,,Smith,,Good Standing,2015-06-01T00:00:00.000\n" +
	"Out Of State Inc,1 Elm Street,Cheyenne,WY,82001,,,,,Good Standing,2012-01-01T00:00:00.000\n" +
	"Defunct Corp,9 Oak Avenue,Denver,CO,80203,,,,,Voluntarily Dissolved,2001-01-01T00:00:00.000\n"

func testLoader(t *testing.T, url string) (*Loader, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Registry.URL = url
	return NewLoader(&cfg, logging.NewNop()), &cfg
}

func TestLoadDownloadsAndParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(datasetCSV))
	}))
	defer server.Close()

	loader, cfg := testLoader(t, server.URL)

	var lastDownloaded int64
	table, err := loader.Load(context.Background(), func(downloaded, total int64) {
		lastDownloaded = downloaded
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (jurisdiction filter plus terminal drop)", table.Len())
	}
	entity := table.Entities[0]
	if entity.NameNormalized != "ACME PLUMBING" {
		t.Errorf("NameNormalized = %q", entity.NameNormalized)
	}
	if entity.AddressNormalized != "123 MAIN ST" {
		t.Errorf("AddressNormalized = %q", entity.AddressNormalized)
	}
	if lastDownloaded != int64(len(datasetCSV)) {
		t.Errorf("progress saw %d bytes, want %d", lastDownloaded, len(datasetCSV))
	}
	if _, err := os.Stat(cfg.CachePath()); err != nil {
		t.Errorf("cache file not written: %v", err)
	}
}

func TestLoadUsesFreshCache(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(datasetCSV))
	}))
	defer server.Close()

	loader, cfg := testLoader(t, server.URL)
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.CachePath(), []byte(datasetCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := loader.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	if requests != 0 {
		t.Errorf("fresh cache should not trigger a download, saw %d requests", requests)
	}
}

func TestLoadRefreshesStaleCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(datasetCSV))
	}))
	defer server.Close()

	loader, cfg := testLoader(t, server.URL)
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.CachePath(), []byte("entityname\nStale Row\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := time.Now().AddDate(0, 0, -(cfg.Registry.CacheMaxAgeDays + 1))
	if err := os.Chtimes(cfg.CachePath(), stale, stale); err != nil {
		t.Fatal(err)
	}

	table, err := loader.Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after refresh", table.Len())
	}
}

func TestRefreshFailureLeavesCacheUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	loader, cfg := testLoader(t, server.URL)
	if err := os.MkdirAll(filepath.Dir(cfg.CachePath()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.CachePath(), []byte(datasetCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loader.Refresh(context.Background(), true, nil); err == nil {
		t.Fatal("Refresh should fail on HTTP 503")
	}

	data, err := os.ReadFile(cfg.CachePath())
	if err != nil {
		t.Fatalf("cache file gone after failed refresh: %v", err)
	}
	if string(data) != datasetCSV {
		t.Error("failed refresh modified the cache file")
	}
}

func TestCacheStatus(t *testing.T) {
	loader, cfg := testLoader(t, "http://127.0.0.1:0/unused")

	status := loader.CacheStatus()
	if status.Cached || status.Fresh {
		t.Errorf("missing cache reported as cached=%v fresh=%v", status.Cached, status.Fresh)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.CachePath()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.CachePath(), []byte(datasetCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	status = loader.CacheStatus()
	if !status.Cached || !status.Fresh {
		t.Errorf("fresh cache reported as cached=%v fresh=%v", status.Cached, status.Fresh)
	}
	if status.SizeBytes != int64(len(datasetCSV)) {
		t.Errorf("SizeBytes = %d, want %d", status.SizeBytes, len(datasetCSV))
	}
}

func TestParseEntitiesMissingOptionalColumns(t *testing.T) {
	csvData := "entityname,principalstate,status\n" +
		"Minimal Co,CO,Exists\n"
	entities, total, err := parseEntities(strings.NewReader(csvData), "CO")
	if err != nil {
		t.Fatalf("parseEntities: %v", err)
	}
	if total != 1 || len(entities) != 1 {
		t.Fatalf("total=%d entities=%d, want 1/1", total, len(entities))
	}
	if entities[0].City != "" || entities[0].Zip != "" {
		t.Error("absent columns should load as empty strings")
	}
	if entities[0].Status != "Exists" {
		t.Errorf("Status = %q, fallback status column not read", entities[0].Status)
	}
}

func TestParseEntitiesMissingNameColumn(t *testing.T) {
	csvData := "somecolumn,principalstate\nvalue,CO\n"
	if _, _, err := parseEntities(strings.NewReader(csvData), "CO"); err == nil {
		t.Fatal("parseEntities should fail without an entityname column")
	}
}

package runs

import (
	"context"
	"testing"
	"time"

	"entitymatch/internal/config"
)

func testStore(t *testing.T) (*Store, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	store, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, &cfg
}

func TestRecordAndList(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := Run{
		StartedAt:    base,
		FinishedAt:   base.Add(90 * time.Second),
		InputPath:    "listings.csv",
		OutputPath:   "listings_enriched.csv",
		RegistryRows: 900000,
		Total:        100, Matched: 82, ByName: 70, ByAddress: 12, Unmatched: 18,
	}
	second := Run{
		StartedAt:  base.Add(time.Hour),
		FinishedAt: base.Add(time.Hour + time.Minute),
		InputPath:  "more.csv",
		OutputPath: "more_enriched.csv",
		Total:      10, Matched: 5, ByName: 5, Unmatched: 5,
	}

	firstID, err := store.Record(ctx, first)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if firstID == "" {
		t.Fatal("Record should assign an ID")
	}
	if _, err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	listed, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("List returned %d runs, want 2", len(listed))
	}
	if listed[0].InputPath != "more.csv" {
		t.Errorf("newest run first: got %q", listed[0].InputPath)
	}
	if listed[1].ID != firstID {
		t.Errorf("older run ID = %q, want %q", listed[1].ID, firstID)
	}
	if listed[1].Matched != 82 || listed[1].RegistryRows != 900000 {
		t.Errorf("round-tripped counts = %+v", listed[1])
	}
	if !listed[1].StartedAt.Equal(base) {
		t.Errorf("StartedAt = %v, want %v", listed[1].StartedAt, base)
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 1 || limited[0].InputPath != "more.csv" {
		t.Errorf("limited list = %+v", limited)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	store, cfg := testStore(t)
	if _, err := store.Record(context.Background(), Run{Total: 1, Unmatched: 1}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	listed, err := reopened.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("reopened store has %d runs, want 1", len(listed))
	}
}

func TestRunDerivedValues(t *testing.T) {
	run := Run{
		StartedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 1, 12, 2, 0, 0, time.UTC),
		Total:      200, Matched: 150,
	}
	if run.Duration() != 2*time.Minute {
		t.Errorf("Duration = %v", run.Duration())
	}
	if run.MatchRate() != 0.75 {
		t.Errorf("MatchRate = %v", run.MatchRate())
	}
	if (Run{}).MatchRate() != 0 {
		t.Error("empty run MatchRate should be 0")
	}
}

package manifest_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"docshard/internal/filter"
	"docshard/internal/manifest"
	"docshard/internal/shard"
)

func openStore(t *testing.T) (*manifest.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := manifest.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, dir
}

func TestOpenCreatesCatalogInStateDir(t *testing.T) {
	store, dir := openStore(t)
	want := filepath.Join(dir, manifest.StateDirName, "manifest.db")
	if store.Path() != want {
		t.Fatalf("catalog path = %q, want %q", store.Path(), want)
	}
}

func TestRunRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	runID, err := store.BeginRun(ctx, "/data/ja.txt.xz")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	records := []shard.Record{
		{Dir: "AA", FileIndex: 0, Path: "AA/wiki_00", Docs: 1000, FirstID: 0, LastID: 999},
		{Dir: "AA", FileIndex: 1, Path: "AA/wiki_01", Docs: 17, FirstID: 1000, LastID: 1016},
	}
	for _, rec := range records {
		if err := store.RecordShard(ctx, runID, rec); err != nil {
			t.Fatalf("RecordShard(%s): %v", rec.Path, err)
		}
	}

	stats := filter.Stats{Seen: 2000, Accepted: 1017, Short: 900, Hiragana: 50, Repetition: 33}
	if err := store.FinishRun(ctx, runID, stats); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	run, err := store.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if run.ID != runID || run.Input != "/data/ja.txt.xz" {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.Seen != 2000 || run.Accepted != 1017 {
		t.Fatalf("unexpected counters: %+v", run)
	}
	if run.FinishedAt == "" {
		t.Fatal("finished_at not set")
	}

	shards, err := store.Shards(ctx, runID)
	if err != nil {
		t.Fatalf("Shards: %v", err)
	}
	if len(shards) != 2 {
		t.Fatalf("got %d shards, want 2", len(shards))
	}
	if shards[0].Path != "AA/wiki_00" || shards[0].Docs != 1000 || shards[0].LastID != 999 {
		t.Fatalf("unexpected first shard: %+v", shards[0])
	}
	if shards[1].FirstID != 1000 {
		t.Fatalf("unexpected second shard: %+v", shards[1])
	}
}

func TestLatestRunEmptyCatalog(t *testing.T) {
	store, _ := openStore(t)
	if _, err := store.LatestRun(context.Background()); !errors.Is(err, manifest.ErrNoRuns) {
		t.Fatalf("err = %v, want ErrNoRuns", err)
	}
}

func TestFinishRunUnknownID(t *testing.T) {
	store, _ := openStore(t)
	if err := store.FinishRun(context.Background(), "missing", filter.Stats{}); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestReopenExistingCatalog(t *testing.T) {
	dir := t.TempDir()
	store, err := manifest.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	runID, err := store.BeginRun(context.Background(), "in.txt")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.FinishRun(context.Background(), runID, filter.Stats{Seen: 1, Accepted: 1}); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := manifest.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	run, err := reopened.LatestRun(context.Background())
	if err != nil {
		t.Fatalf("LatestRun after reopen: %v", err)
	}
	if run.ID != runID {
		t.Fatalf("run id = %q, want %q", run.ID, runID)
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		{Score: 100, Coins: 2, Distance: 80.5, Duration: 8 * time.Second, Preset: "normal", Seed: 1, CreatedAt: base},
		{Score: 50, Coins: 0, Distance: 50, Duration: 5 * time.Second, Preset: "easy", Seed: 2, CreatedAt: base.Add(time.Minute)},
		{Score: 200, Coins: 1, Distance: 150, Duration: 14 * time.Second, Preset: "hard", Seed: 3, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	first := top[1]
	if first.Coins != 2 || first.Distance != 80.5 || first.Duration != 8*time.Second {
		t.Errorf("Run fields not preserved: %+v", first)
	}
	if first.Preset != "normal" || first.Seed != 1 {
		t.Errorf("Run metadata not preserved: %+v", first)
	}
	if !first.CreatedAt.Equal(base) {
		t.Errorf("Expected CreatedAt %v, got %v", base, first.CreatedAt)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		store.SaveRun(Run{Score: i, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("Expected runs 3 and 2, got %v", recent)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Score: 42, Coins: 3})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("Expected a 26 character ULID, got %q", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 42 || run.Coins != 3 {
		t.Errorf("Unexpected run: %+v", run)
	}

	missing, err := store.RunByID("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for unknown id, got %v, %v", missing, err)
	}

	if _, err := store.RunByID("not-a-ulid"); err == nil {
		t.Error("Expected an error for a malformed id")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 without runs, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRunsKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.RaiseBest(DefaultBestKey, 100)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	best, _ := store.Best(DefaultBestKey)
	if best != 100 {
		t.Errorf("Best score should survive clearing history, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	last := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	store.SaveRun(Run{Score: 100, Coins: 1, Distance: 10, Duration: 2 * time.Second, CreatedAt: last.Add(-time.Hour)})
	store.SaveRun(Run{Score: 300, Coins: 4, Distance: 30, Duration: 9 * time.Second, CreatedAt: last})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.TotalCoins != 5 || stats.TotalDistance != 40 || stats.LongestRun != 9*time.Second {
		t.Errorf("Unexpected run totals: %+v", stats)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("Expected LastPlayed %v, got %v", last, stats.LastPlayed)
	}
}

func TestBestStoreNeverLowers(t *testing.T) {
	store := openTestStore(t)
	best := NewBestStore(store, "")

	if best.Key() != DefaultBestKey {
		t.Errorf("Expected default key, got %q", best.Key())
	}

	v, err := best.Load()
	if err != nil || v != 0 {
		t.Fatalf("Load() on empty store = %d, %v", v, err)
	}

	best.Save(120)
	best.Save(80)

	v, _ = best.Load()
	if v != 120 {
		t.Errorf("Expected best 120, got %d", v)
	}
}

func TestBestStoreKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)
	easy := NewBestStore(store, "easy")
	hard := NewBestStore(store, "hard")

	easy.Save(500)
	hard.Save(90)

	if v, _ := easy.Load(); v != 500 {
		t.Errorf("easy best = %d", v)
	}
	if v, _ := hard.Load(); v != 90 {
		t.Errorf("hard best = %d", v)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

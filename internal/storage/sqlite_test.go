package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{LevelID: "01-meadow", EndReason: "quit"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	saved := []Run{
		{LevelID: "01-meadow", Ticks: 600, Deaths: 2, Stomps: 1, AvgFPS: 59.5, EndReason: "quit"},
		{LevelID: "01-meadow", Ticks: 900, Deaths: 0, Stomps: 3, AvgFPS: 60, EndReason: "restart"},
		{LevelID: "02-steps", Ticks: 300, Deaths: 5, EndReason: "disconnect"},
	}
	for _, r := range saved {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	runs, err := store.RecentRuns("01-meadow", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Ticks != 900 || runs[0].EndReason != "restart" {
		t.Errorf("Expected newest run first, got %+v", runs[0])
	}
	if runs[1].AvgFPS != 59.5 {
		t.Errorf("Expected avg fps 59.5, got %v", runs[1].AvgFPS)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 2 || all[0].LevelID != "02-steps" {
		t.Errorf("Expected limit 2 across levels, newest 02-steps, got %+v", all)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("01-meadow")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run for empty level, got %+v", best)
	}

	for _, r := range []Run{
		{LevelID: "01-meadow", Ticks: 500, Deaths: 1, Stomps: 9, EndReason: "quit"},
		{LevelID: "01-meadow", Ticks: 800, Deaths: 0, Stomps: 2, EndReason: "quit"},
		{LevelID: "01-meadow", Ticks: 700, Deaths: 0, Stomps: 2, EndReason: "quit"},
		{LevelID: "01-meadow", Ticks: 900, Deaths: 0, Stomps: 1, EndReason: "quit"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestRun("01-meadow")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Ticks != 700 {
		t.Errorf("Expected 0 deaths, 2 stomps, 700 ticks; got %+v", best)
	}
}

func TestStoreLevelIDsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"02-steps", "01-meadow", "02-steps"} {
		if _, err := store.SaveRun(Run{LevelID: id, EndReason: "quit"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	ids, err := store.LevelIDs()
	if err != nil {
		t.Fatalf("LevelIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "01-meadow" || ids[1] != "02-steps" {
		t.Errorf("Expected [01-meadow 02-steps], got %v", ids)
	}

	if err := store.ClearRuns("02-steps"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns("02-steps", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	runs, err = store.RecentRuns("01-meadow", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected other level untouched, got %d runs", len(runs))
	}
}

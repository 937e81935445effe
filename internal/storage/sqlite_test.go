package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []Run{
		{GridWidth: 64, GridHeight: 64, Generations: 120, PeakPopulation: 900, FinalPopulation: 210, DurationSecs: 12},
		{GridWidth: 80, GridHeight: 24, Generations: 3000, PeakPopulation: 640, FinalPopulation: 88, DurationSecs: 300},
		{GridWidth: 32, GridHeight: 32, Generations: 45, PeakPopulation: 500, FinalPopulation: 0, DurationSecs: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first: the 32x32 run was saved last
	if recent[0].GridWidth != 32 {
		t.Errorf("Expected newest run first (32x32), got %dx%d",
			recent[0].GridWidth, recent[0].GridHeight)
	}

	longest, err := store.LongestRuns(10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if longest[0].Generations != 3000 {
		t.Errorf("Expected longest run first (3000 generations), got %d", longest[0].Generations)
	}
	if longest[2].Generations != 45 {
		t.Errorf("Expected shortest run last (45 generations), got %d", longest[2].Generations)
	}
}

func TestStoreRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GridWidth: 64, GridHeight: 64, Generations: int64((i + 1) * 100)})
	}

	runs, err := store.LongestRuns(3)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Generations != 500 || runs[1].Generations != 400 || runs[2].Generations != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHistory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty history
	stats, err := store.History()
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.TotalGenerations != 0 {
		t.Errorf("Empty history should be all zeroes, got %+v", stats)
	}

	store.SaveRun(Run{GridWidth: 64, GridHeight: 64, Generations: 100, PeakPopulation: 800, DurationSecs: 10})
	store.SaveRun(Run{GridWidth: 64, GridHeight: 64, Generations: 250, PeakPopulation: 1200, DurationSecs: 25})

	stats, err = store.History()
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, expected 2", stats.RunCount)
	}
	if stats.TotalGenerations != 350 {
		t.Errorf("TotalGenerations = %d, expected 350", stats.TotalGenerations)
	}
	if stats.MaxPeakPopulation != 1200 {
		t.Errorf("MaxPeakPopulation = %d, expected 1200", stats.MaxPeakPopulation)
	}
	if stats.LongestRunSecs != 25 {
		t.Errorf("LongestRunSecs = %d, expected 25", stats.LongestRunSecs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GridWidth: 64, GridHeight: 64, Generations: 100})
	store.SaveRun(Run{GridWidth: 64, GridHeight: 64, Generations: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

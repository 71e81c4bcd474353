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

	runs := []RunEntry{
		{Games: 1000, Seed: 1, LastRolls: 33, MinRolls: 7, MaxRolls: 211, MeanRolls: 39.2},
		{Games: 1000000, Seed: 42, LastRolls: 18, MinRolls: 7, MaxRolls: 472, MeanRolls: 39.5},
		{Games: 10, Seed: 99, LastRolls: 51, MinRolls: 12, MaxRolls: 90, MeanRolls: 41.1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Newest first
	if got[0].Seed != 99 {
		t.Errorf("Expected newest run seed 99, got %d", got[0].Seed)
	}
	if got[2].Seed != 1 {
		t.Errorf("Expected oldest run seed 1, got %d", got[2].Seed)
	}

	if got[1].Games != 1000000 || got[1].LastRolls != 18 {
		t.Errorf("Run fields not round-tripped: %+v", got[1])
	}
	if got[1].MeanRolls != 39.5 {
		t.Errorf("MeanRolls = %v, want 39.5", got[1].MeanRolls)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(RunEntry{Games: 100, Seed: int64(i), LastRolls: 20 + i, MinRolls: 7, MaxRolls: 100, MeanRolls: 39})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(got))
	}
}

func TestStoreExtremes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store
	shortest, err := store.ShortestGame()
	if err != nil {
		t.Fatalf("ShortestGame() failed: %v", err)
	}
	if shortest != 0 {
		t.Errorf("Expected 0 for empty store, got %d", shortest)
	}

	store.SaveRun(RunEntry{Games: 100, Seed: 1, LastRolls: 30, MinRolls: 9, MaxRolls: 300, MeanRolls: 40})
	store.SaveRun(RunEntry{Games: 100, Seed: 2, LastRolls: 25, MinRolls: 7, MaxRolls: 150, MeanRolls: 38})

	shortest, err = store.ShortestGame()
	if err != nil {
		t.Fatalf("ShortestGame() failed: %v", err)
	}
	if shortest != 7 {
		t.Errorf("ShortestGame() = %d, want 7", shortest)
	}

	longest, err := store.LongestGame()
	if err != nil {
		t.Fatalf("LongestGame() failed: %v", err)
	}
	if longest != 300 {
		t.Errorf("LongestGame() = %d, want 300", longest)
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

	store.SaveRun(RunEntry{Games: 100, Seed: 1, LastRolls: 30, MinRolls: 9, MaxRolls: 300, MeanRolls: 40})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", count)
	}
}

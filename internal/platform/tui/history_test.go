package tui

import (
	"path/filepath"
	"testing"

	"github.com/lmatthews/ladders/internal/storage"
)

func TestHistoryModelLoadsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		_, err := store.SaveRun(storage.RunEntry{
			Games: 100, Seed: int64(i), LastRolls: 20 + i,
			MinRolls: 7, MaxRolls: 200, MeanRolls: 39.4,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, 80, 24)
	if m.loadErr != nil {
		t.Fatalf("model load error: %v", m.loadErr)
	}
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Newest first: seed 2 on top.
	if rows[0][2] != "2" {
		t.Errorf("top row seed = %s, want 2", rows[0][2])
	}
	if rows[0][3] != "22" {
		t.Errorf("top row last rolls = %s, want 22", rows[0][3])
	}
}

func TestHistoryModelEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewHistoryModel(store, 80, 24)
	if len(m.table.Rows()) != 0 {
		t.Errorf("expected no rows, got %d", len(m.table.Rows()))
	}
}

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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := store.SaveSession(Session{
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			Duration:  time.Duration(30*(i+1)) * time.Second,
			Frontend:  "tui",
			Width:     13,
			Height:    8,
			Reveals:   i + 1,
			Moves:     10,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Reveals != 3 || sessions[1].Reveals != 2 {
		t.Errorf("Expected reveals 3 then 2, got %d then %d", sessions[0].Reveals, sessions[1].Reveals)
	}
	if !sessions[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("Expected start %v, got %v", base.Add(2*time.Hour), sessions[0].StartedAt)
	}
	if sessions[0].Duration != 90*time.Second {
		t.Errorf("Expected duration 90s, got %v", sessions[0].Duration)
	}
	if sessions[0].Width != 13 || sessions[0].Height != 8 || sessions[0].Frontend != "tui" {
		t.Errorf("Unexpected session fields: %+v", sessions[0])
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty totals, got %+v", empty)
	}

	last := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	store.SaveSession(Session{StartedAt: last.Add(-time.Hour), Duration: time.Minute, Width: 4, Height: 4, Reveals: 2, Marks: 1, Moves: 5, Blocked: 1})
	store.SaveSession(Session{StartedAt: last, Duration: 2 * time.Minute, Width: 4, Height: 4, Reveals: 3, Marks: 4, Moves: 6, Blocked: 2})

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	expected := Totals{Sessions: 2, PlayTime: 3 * time.Minute, Reveals: 5, Marks: 5, Moves: 11, Blocked: 3}
	if totals.Sessions != expected.Sessions || totals.PlayTime != expected.PlayTime ||
		totals.Reveals != expected.Reveals || totals.Marks != expected.Marks ||
		totals.Moves != expected.Moves || totals.Blocked != expected.Blocked {
		t.Errorf("Expected %+v, got %+v", expected, totals)
	}
	if !totals.LastPlayed.Equal(last) {
		t.Errorf("Expected last played %v, got %v", last, totals.LastPlayed)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(Session{StartedAt: time.Now(), Width: 1, Height: 1})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions, got %d", len(sessions))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveSession(Session{StartedAt: time.Now(), Width: 13, Height: 8, Moves: 42})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Sessions != 1 || totals.Moves != 42 {
		t.Errorf("Expected 1 session with 42 moves, got %+v", totals)
	}
}

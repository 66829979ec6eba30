package platform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveSession(t *testing.T) {
	store := openStore(t)
	SaveSession(store, nil, Record{
		Frontend: FrontendWindow,
		Grid:     fixed.P(13, 8),
		Started:  time.Now().Add(-90 * time.Second),
		Tally:    minefield.Tally{Reveals: 3, Marks: 2, Moves: 10, Blocked: 1},
	})

	sessions, err := store.RecentSessions(5)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("stored %d sessions, expected 1", len(sessions))
	}
	s := sessions[0]
	if s.Frontend != FrontendWindow || s.Width != 13 || s.Height != 8 {
		t.Errorf("session = %+v, expected a 13x8 window session", s)
	}
	if s.Reveals != 3 || s.Marks != 2 || s.Moves != 10 || s.Blocked != 1 {
		t.Errorf("counters = %d/%d/%d/%d, expected 3/2/10/1", s.Reveals, s.Marks, s.Moves, s.Blocked)
	}
	if s.Duration < 89*time.Second {
		t.Errorf("duration = %v, expected about 90s", s.Duration)
	}
}

func TestSaveSessionSkipsEmpty(t *testing.T) {
	store := openStore(t)
	SaveSession(store, nil, Record{Frontend: FrontendTUI, Grid: fixed.P(8, 6), Started: time.Now()})

	sessions, err := store.RecentSessions(5)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("stored %d sessions, expected none", len(sessions))
	}
}

func TestSaveSessionNilStore(t *testing.T) {
	// Must not panic.
	SaveSession(nil, nil, Record{Tally: minefield.Tally{Moves: 1}})
}

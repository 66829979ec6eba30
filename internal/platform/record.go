// Package platform holds what the terminal and window frontends share.
// The frontends themselves live in the tui and window subpackages.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/storage"
)

// Frontend names recorded with each session.
const (
	FrontendTUI    = "tui"
	FrontendWindow = "window"
	FrontendSSH    = "ssh"
)

// Record describes a finished session before it is stored.
type Record struct {
	Frontend string
	Grid     fixed.Point
	Started  time.Time
	Tally    minefield.Tally
}

// SaveSession stores r and logs the outcome. Sessions with nothing recorded
// are skipped; store and logger may both be nil. A storage failure is
// logged and otherwise ignored.
func SaveSession(store *storage.Store, logger *log.Logger, r Record) {
	if store == nil || r.Tally.Empty() {
		return
	}

	sess := storage.Session{
		StartedAt: r.Started,
		Duration:  time.Since(r.Started),
		Frontend:  r.Frontend,
		Width:     r.Grid.X,
		Height:    r.Grid.Y,
		Reveals:   r.Tally.Reveals,
		Marks:     r.Tally.Marks,
		Moves:     r.Tally.Moves,
		Blocked:   r.Tally.Blocked,
	}
	id, err := store.SaveSession(sess)
	if logger == nil {
		return
	}
	if err != nil {
		logger.Warn("could not save session", "error", err)
		return
	}
	logger.Info("session saved", "id", id, "frontend", sess.Frontend, "reveals", sess.Reveals, "duration", sess.Duration.Round(time.Second))
}

// Package tui is the terminal frontend. It runs the minefield inside a Bubble
// Tea program, compositing the tile background and cursor onto a character
// screen, and can serve the same session over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one frame of the board it names.
// A board only reacts to its own ticks, so a tick still in flight when a
// board is replaced cannot start a second frame loop on the new one.
type TickMsg struct {
	Time  time.Time
	Board uint64
}

// boardIDs hands out board ids. SSH sessions create boards concurrently.
var boardIDs atomic.Uint64

func nextBoardID() uint64 {
	return boardIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for board after
// a frame interval.
func tickCmd(tickRate int, board uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Board: board}
	})
}

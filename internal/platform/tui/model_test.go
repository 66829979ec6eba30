package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/storage"
)

func newTestModel(t *testing.T, s Session) Model {
	t.Helper()
	if s.Grid == (fixed.Point{}) {
		s.Grid = fixed.P(13, 8)
		s.Origin = fixed.V(16, 16)
	}
	m, err := NewModel(s)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

// send feeds msgs through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

// tickFor returns a frame tick addressed to m.
func tickFor(m Model) TickMsg {
	return TickMsg{Board: m.board}
}

type recordingSink struct {
	clips []core.Clip
}

func (s *recordingSink) Play(c core.Clip) {
	s.clips = append(s.clips, c)
}

func TestNewModelRejectsEmptyGrid(t *testing.T) {
	if _, err := NewModel(Session{Grid: fixed.P(0, 4)}); err == nil {
		t.Error("expected an error for a zero-width grid")
	}
}

func TestModelMovesOnTick(t *testing.T) {
	sink := &recordingSink{}
	m := newTestModel(t, Session{Sink: sink})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Field().Cursor().Pos(); got != fixed.V(16, 16) {
		t.Fatalf("cursor moved before the tick: %v", got)
	}

	m = send(t, m, tickFor(m))
	if got := m.Field().Cursor().Pos(); got != fixed.V(32, 16) {
		t.Errorf("cursor = %v, expected (32,16)", got)
	}
	if m.Tally().Moves != 1 {
		t.Errorf("moves = %d, expected 1", m.Tally().Moves)
	}
	if len(sink.clips) != 1 || sink.clips[0] != minefield.ClipCursorMove {
		t.Errorf("clips = %v, expected one move clip", sink.clips)
	}

	// Input is consumed by the tick.
	m = send(t, m, tickFor(m))
	if got := m.Field().Cursor().Pos(); got != fixed.V(32, 16) {
		t.Errorf("cursor = %v after an idle tick, expected (32,16)", got)
	}
}

func TestModelRevealAndMark(t *testing.T) {
	m := newTestModel(t, Session{})

	m = send(t, m, runeKey('x'), tickFor(m), tea.KeyMsg{Type: tea.KeyDown}, tickFor(m), runeKey('z'), tickFor(m))

	if b, _ := m.Field().Grid().Block(fixed.P(0, 0)); b != minefield.Flagged {
		t.Errorf("cell (0,0) = %v, expected Flagged", b)
	}
	if b, _ := m.Field().Grid().Block(fixed.P(0, 1)); b != minefield.Revealed {
		t.Errorf("cell (0,1) = %v, expected Revealed", b)
	}
	tally := m.Tally()
	if tally.Marks != 1 || tally.Reveals != 1 || tally.Moves != 1 {
		t.Errorf("tally = %+v, expected one each of marks, reveals and moves", tally)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, Session{Music: true})

	m = send(t, m, runeKey('p'), tickFor(m), tea.KeyMsg{Type: tea.KeyRight}, tickFor(m))
	if got := m.Field().Cursor().Pos(); got != fixed.V(16, 16) {
		t.Errorf("cursor moved while paused: %v", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the paused badge")
	}

	m = send(t, m, runeKey('p'), tickFor(m), tea.KeyMsg{Type: tea.KeyRight}, tickFor(m))
	if got := m.Field().Cursor().Pos(); got != fixed.V(32, 16) {
		t.Errorf("cursor = %v after unpausing, expected (32,16)", got)
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, Session{})

	m = send(t, m, runeKey('z'), tickFor(m), tea.KeyMsg{Type: tea.KeyRight}, tickFor(m))
	m = send(t, m, runeKey('r'), tickFor(m))

	if got := m.Field().Cursor().Pos(); got != fixed.V(16, 16) {
		t.Errorf("cursor = %v after restart, expected (16,16)", got)
	}
	if c := m.Field().Grid().Counts(); c.Revealed != 0 {
		t.Errorf("revealed = %d after restart, expected 0", c.Revealed)
	}
}

func TestModelEdgeIsReported(t *testing.T) {
	m := newTestModel(t, Session{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tickFor(m))
	if m.Tally().Blocked != 1 {
		t.Errorf("blocked = %d, expected 1", m.Tally().Blocked)
	}
	if !strings.Contains(m.View(), "edge") {
		t.Error("status line should flag the rejected move")
	}
}

func TestModelCentersOnResize(t *testing.T) {
	m := newTestModel(t, Session{Grid: fixed.P(8, 6), Center: true})

	// 80x26 terminal: 24 playfield rows -> 320x192 px. An 8x6 grid is 128x96.
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 26})

	if got := m.Field().Grid().Origin(); got != fixed.V(96, 48) {
		t.Errorf("origin = %v, expected (96,48)", got)
	}
	if got := m.Field().Cursor().Pos(); got != fixed.V(96, 48) {
		t.Errorf("cursor = %v, expected to follow the grid to (96,48)", got)
	}
}

func TestModelSavesSessionOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Session{Store: store, Frontend: "tui"})
	m = send(t, m, runeKey('z'), tickFor(m), runeKey('q'))

	if !m.IsQuitting() {
		t.Fatal("q should end the session")
	}
	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("stored %d sessions, expected 1", len(sessions))
	}
	s := sessions[0]
	if s.Frontend != "tui" || s.Width != 13 || s.Height != 8 || s.Reveals != 1 {
		t.Errorf("stored session = %+v, expected a 13x8 tui session with one reveal", s)
	}
}

func TestModelSkipsEmptySession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, Session{Store: store})
	send(t, m, runeKey('q'))

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("stored %d sessions, expected none for an idle session", len(sessions))
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(config.SizeClassic, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // Clamped at the last item
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().Preset != config.SizeLarge {
		t.Errorf("selected = %v, expected large", m.Selected())
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m := NewMenuModel(config.SizeSmall, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsHistory() {
		t.Error("tab should request the history")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestHistoryView(t *testing.T) {
	empty := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No sessions recorded") {
		t.Error("empty history should say so")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveSession(storage.Session{Frontend: "ssh", Width: 20, Height: 12, Reveals: 7}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	h := NewHistoryModel(store, 100, 30)
	view := h.View()
	if !strings.Contains(view, "20x12") {
		t.Error("history should list the stored grid size")
	}
	if !strings.Contains(view, "1 sessions") {
		t.Error("history should show the totals line")
	}

	next, _ := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(HistoryModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestSessionModelReturnsToMenu(t *testing.T) {
	s := NewSessionModel(SessionTemplate{Preset: config.SizeSmall}, 80, 26)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v after selecting, expected the game", s.screen)
	}
	if got := s.game.Field().Grid().Size(); got != fixed.P(8, 6) {
		t.Errorf("grid = %v, expected the small preset 8x6", got)
	}

	next, _ = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("quitting a game should return to the menu, got screen %v quitting %v", s.screen, s.quitting)
	}

	next, cmd := s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("quitting the menu should end the connection")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m := newTestModel(t, Session{})
	other := newTestModel(t, Session{})
	if m.board == other.board {
		t.Fatalf("two models share board id %d", m.board)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	next, cmd := m.Update(tickFor(other))
	m = next.(Model)
	if cmd != nil {
		t.Error("a foreign tick should not schedule another frame")
	}
	if got := m.Field().Cursor().Pos(); got != fixed.V(16, 16) {
		t.Errorf("cursor = %v after a foreign tick, expected (16,16)", got)
	}

	next, cmd = m.Update(tickFor(m))
	m = next.(Model)
	if cmd == nil {
		t.Error("an own tick should schedule the next frame")
	}
	if got := m.Field().Cursor().Pos(); got != fixed.V(32, 16) {
		t.Errorf("cursor = %v after an own tick, expected (32,16)", got)
	}
}

func TestSessionModelDropsStaleTicks(t *testing.T) {
	s := NewSessionModel(SessionTemplate{Preset: config.SizeSmall}, 80, 26)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	stale := tickFor(s.game)

	next, _ = s.Update(runeKey('q'))
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected a new game", s.screen)
	}

	next, cmd := s.Update(stale)
	s = next.(SessionModel)
	if cmd != nil {
		t.Error("the previous board's tick must not start a second frame loop")
	}

	next, cmd = s.Update(tickFor(s.game))
	s = next.(SessionModel)
	if cmd == nil {
		t.Error("the current board's tick should schedule the next frame")
	}
}

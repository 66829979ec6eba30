package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minefield/internal/audio"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/platform"
	"github.com/vovakirdan/minefield/internal/storage"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// hudRows is the number of terminal rows below the playfield.
const hudRows = 2

// Session holds everything a game model needs from its host.
type Session struct {
	Grid     fixed.Point // Size in cells
	Origin   fixed.Vec   // Initial grid position in pixels
	Center   bool        // Re-centre the grid whenever the terminal resizes
	TickRate int
	Music    bool
	Frontend string         // Recorded with the session, see platform.Frontend*
	Store    *storage.Store // May be nil
	Sink     core.AudioSink // May be nil for silence
	Logger   *log.Logger    // May be nil
}

// Model is the Bubble Tea model for one minefield session.
type Model struct {
	session  Session
	board    uint64 // Tags this model's ticks
	field    *minefield.Field
	tiles    *TileMap
	sprites  *SpriteLayer
	screen   *core.Screen
	tracker  *audio.Tracker
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	tally    minefield.Tally
	started  time.Time
	last     core.StepResult
	paused   bool
	quitting bool
	saved    bool
}

// NewModel creates a model and draws the initial grid.
func NewModel(s Session) (Model, error) {
	if s.Sink == nil {
		s.Sink = core.NopSink{}
	}
	if s.TickRate <= 0 {
		s.TickRate = core.DefaultConfig().TickRate
	}

	field, err := minefield.NewField(s.Grid, s.Origin, minefield.DefaultAssets())
	if err != nil {
		return Model{}, err
	}
	tm := NewTileMap(s.Grid)
	field.Render(tm)

	var tracker *audio.Tracker
	if s.Music {
		tracker = audio.NewTracker(audio.DefaultPattern, s.TickRate/6)
	}

	cfg := core.DefaultConfig()
	return Model{
		session: s,
		board:   nextBoardID(),
		field:   field,
		tiles:   tm,
		sprites: &SpriteLayer{},
		screen:  core.NewScreen(cfg.ScreenW/tiles.SubTileSize*CellCols, cfg.ScreenH/tiles.SubTileSize*CellRows),
		tracker: tracker,
		input:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickRate, m.board)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.input) {
			m.quitting = true
			m.saveSession()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Board != m.board {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleResize fits the screen to the terminal and optionally re-centres the grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(1, msg.Height-hudRows)
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	if m.session.Center {
		area := CellToPixel(msg.Width, rows)
		origin := minefield.CenteredOrigin(m.field.Grid().Size(), area)
		// Snap to whole sub-tiles so the grid lines up with character cells.
		snapped := origin.Round()
		snapped = fixed.P(snapped.X/tiles.SubTileSize*tiles.SubTileSize, snapped.Y/tiles.SubTileSize*tiles.SubTileSize)
		m.field.Reposition(m.tiles, snapped.Fixed())
	}
	return m, nil
}

// handleTick runs one frame: system actions first, then the field.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
		if m.tracker != nil {
			m.tracker.SetPaused(m.paused)
		}
	}
	if m.input.Has(core.ActionRestart) {
		m.field.Restart(m.tiles)
		if m.tracker != nil {
			m.tracker.Reset()
		}
		m.paused = false
		m.last = core.StepResult{}
	}

	if !m.paused {
		res := m.field.Update(m.input, m.tiles, m.session.Sink)
		if res.Event != core.EventNone {
			m.last = res
		}
		m.tally.Record(res)
		if m.tracker != nil {
			m.tracker.Step(m.session.Sink)
		}
	}

	m.input.Clear()
	return m, tickCmd(m.session.TickRate, m.board)
}

// saveSession records the session once.
func (m *Model) saveSession() {
	if m.saved {
		return
	}
	m.saved = true
	platform.SaveSession(m.session.Store, m.session.Logger, platform.Record{
		Frontend: m.session.Frontend,
		Grid:     m.field.Grid().Size(),
		Started:  m.started,
		Tally:    m.tally,
	})
}

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.tiles.Compose(m.screen)
	m.field.Draw(m.sprites)
	m.sprites.Compose(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine describes the cell under the cursor and the grid census.
func (m Model) statusLine() string {
	cell := m.field.CellUnderCursor()
	state, _ := m.field.Grid().Block(cell)
	c := m.field.Grid().Counts()

	line := fmt.Sprintf(" (%d,%d) %-10s  flags %d  marks %d  revealed %d/%d",
		cell.X, cell.Y, state, c.Flagged, c.Questioned, c.Revealed, m.field.Grid().Len())
	if m.last.Event == core.EventBlocked {
		line += "  edge"
	}
	if m.paused {
		return hudStyle.Render(line) + "  " + pausedStyle.Render(" PAUSED ")
	}
	return hudStyle.Render(line)
}

// Tally returns the session counters.
func (m Model) Tally() minefield.Tally {
	return m.tally
}

// IsQuitting returns true once the player has left the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Field returns the field being played.
func (m Model) Field() *minefield.Field {
	return m.field
}

// Run starts a Bubble Tea program for one session and blocks until it ends.
func Run(s Session) error {
	model, err := NewModel(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

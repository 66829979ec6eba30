// Package window is the raster frontend. It runs the minefield in an Ebiten
// window at the handheld's logical resolution, scaled up by an integer factor.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/minefield/internal/audio"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/platform"
	"github.com/vovakirdan/minefield/internal/storage"
	"github.com/vovakirdan/minefield/internal/tiles"
)

// Session holds everything the window needs from its host.
type Session struct {
	Grid     fixed.Point // Size in cells
	Origin   fixed.Vec
	Width    int // Logical screen size in pixels
	Height   int
	Scale    int // Window pixels per logical pixel
	TickRate int
	Music    bool
	Store    *storage.Store // May be nil
	Sink     core.AudioSink // May be nil for silence
	Logger   *log.Logger    // May be nil
}

// hudHeight is the line height of basicfont.Face7x13.
const hudHeight = 13

// keyBindings maps keyboard keys onto actions. Several keys may share an action.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyH:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyL:          core.ActionRight,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyK:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyJ:          core.ActionDown,
	ebiten.KeyZ:          core.ActionPrimary,
	ebiten.KeySpace:      core.ActionPrimary,
	ebiten.KeyX:          core.ActionSecondary,
	ebiten.KeyF:          core.ActionSecondary,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyEnter:      core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.KeyEscape:     core.ActionQuit,
}

// Game implements ebiten.Game for one session.
type Game struct {
	session Session
	field   *minefield.Field
	layer   *tiles.Layer
	sprites spriteQueue
	atlas   *Atlas
	face    *text.GoXFace
	tracker *audio.Tracker
	input   core.InputFrame
	tally   minefield.Tally
	started time.Time
	last    core.StepResult
	paused  bool
	saved   bool
}

// NewGame creates a game and draws the initial grid into its layer.
// No graphics resources are allocated until the first Draw.
func NewGame(s Session) (*Game, error) {
	def := core.DefaultConfig()
	if s.Sink == nil {
		s.Sink = core.NopSink{}
	}
	if s.TickRate <= 0 {
		s.TickRate = def.TickRate
	}
	if s.Width <= 0 || s.Height <= 0 {
		s.Width, s.Height = def.ScreenW, def.ScreenH
	}
	if s.Scale <= 0 {
		s.Scale = 1
	}

	field, err := minefield.NewField(s.Grid, s.Origin, minefield.DefaultAssets())
	if err != nil {
		return nil, err
	}
	layer := tiles.NewLayer(s.Grid)
	field.Render(layer)

	var tracker *audio.Tracker
	if s.Music {
		tracker = audio.NewTracker(audio.DefaultPattern, s.TickRate/6)
	}

	return &Game{
		session: s,
		field:   field,
		layer:   layer,
		atlas:   NewAtlas(),
		face:    text.NewGoXFace(basicfont.Face7x13),
		tracker: tracker,
		input:   core.NewInputFrame(),
		started: time.Now(),
	}, nil
}

// Update polls the keyboard and runs one frame.
func (g *Game) Update() error {
	g.poll()
	if ebiten.IsWindowBeingClosed() {
		g.input.Set(core.ActionQuit)
	}
	if g.step() {
		g.save()
		return ebiten.Termination
	}
	return nil
}

// poll collects the keys pressed since the last frame into the input frame.
func (g *Game) poll() {
	for k, a := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			g.input.Set(a)
		}
	}
}

// step applies the pending input and clears it. Returns true on quit.
func (g *Game) step() bool {
	defer g.input.Clear()

	if g.input.Has(core.ActionQuit) {
		return true
	}
	if g.input.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.tracker != nil {
			g.tracker.SetPaused(g.paused)
		}
	}
	if g.input.Has(core.ActionRestart) {
		g.field.Restart(g.layer)
		if g.tracker != nil {
			g.tracker.Reset()
		}
		g.paused = false
		g.last = core.StepResult{}
	}
	if g.paused {
		return false
	}

	res := g.field.Update(g.input, g.layer, g.session.Sink)
	if res.Event != core.EventNone {
		g.last = res
	}
	g.tally.Record(res)
	if g.tracker != nil {
		g.tracker.Step(g.session.Sink)
	}
	return false
}

func (g *Game) save() {
	if g.saved {
		return
	}
	g.saved = true
	platform.SaveSession(g.session.Store, g.session.Logger, platform.Record{
		Frontend: platform.FrontendWindow,
		Grid:     g.field.Grid().Size(),
		Started:  g.started,
		Tally:    g.tally,
	})
}

// Draw renders the background layer, the cursor and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	// Revealed cells are blank in the layer; the floor shows through.
	topLeft := g.field.Grid().Origin().Round()
	size := g.field.Grid().Size().Mul(tiles.SuperTileSize)
	vector.DrawFilledRect(screen, float32(topLeft.X), float32(topLeft.Y), float32(size.X), float32(size.Y), colorFloor, false)

	g.layer.Visible(func(p fixed.Point, e tiles.Entry) {
		img := g.atlas.Tile(e.Sheet, e.Setting.Index)
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		if e.Setting.HFlip {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(tiles.SubTileSize, 0)
		}
		if e.Setting.VFlip {
			op.GeoM.Scale(1, -1)
			op.GeoM.Translate(0, tiles.SubTileSize)
		}
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		screen.DrawImage(img, op)
	})

	g.field.Draw(&g.sprites)
	for _, q := range g.sprites.drain() {
		if q.sprite != minefield.SpriteCursor {
			continue
		}
		vector.StrokeRect(screen, float32(q.pos.X)+0.5, float32(q.pos.Y)+0.5,
			tiles.SuperTileSize-1, tiles.SuperTileSize-1, 1, colorCursor, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(2, float64(g.session.Height-hudHeight))
	op.ColorScale.ScaleWithColor(colorHUDText)
	text.Draw(screen, g.statusLine(), g.face, op)
}

func (g *Game) statusLine() string {
	cell := g.field.CellUnderCursor()
	c := g.field.Grid().Counts()
	line := fmt.Sprintf("(%d,%d) F%d ?%d %d/%d", cell.X, cell.Y, c.Flagged, c.Questioned, c.Revealed, g.field.Grid().Len())
	switch {
	case g.paused:
		line += " PAUSED"
	case g.last.Event == core.EventBlocked:
		line += " edge"
	}
	return line
}

// Layout fixes the logical screen size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.session.Width, g.session.Height
}

// Tally returns the session counters.
func (g *Game) Tally() minefield.Tally {
	return g.tally
}

// Field returns the field being played.
func (g *Game) Field() *minefield.Field {
	return g.field
}

// spriteQueue collects the sprites queued for one frame. It implements tiles.Frame.
type spriteQueue struct {
	items []queuedSprite
}

type queuedSprite struct {
	sprite tiles.Sprite
	pos    fixed.Point
}

func (q *spriteQueue) DrawSprite(s tiles.Sprite, pos fixed.Point) {
	q.items = append(q.items, queuedSprite{sprite: s, pos: pos})
}

// drain returns the queued sprites and empties the queue.
func (q *spriteQueue) drain() []queuedSprite {
	items := q.items
	q.items = q.items[:0:0]
	return items
}

// Run opens the window and blocks until the player quits or closes it.
func Run(s Session) error {
	g, err := NewGame(s)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.session.Width*g.session.Scale, g.session.Height*g.session.Scale)
	ebiten.SetWindowTitle("Minefield")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(g.session.TickRate)

	err = ebiten.RunGame(g)
	g.save()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

package core

// RuntimeConfig contains configuration passed to the game loop at start-up.
// Platforms fill it from the loaded YAML config and the host environment.
type RuntimeConfig struct {
	ScreenW  int // Display width (pixels for raster, characters for terminal)
	ScreenH  int // Display height
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 240x160 is the native resolution of the handheld the game was designed for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  240,
		ScreenH:  160,
		TickRate: 60,
	}
}

// Event identifies what a simulation step did.
type Event int

const (
	EventNone    Event = iota
	EventReveal        // A cell was revealed
	EventMark          // A cell's mark advanced
	EventMove          // The cursor moved
	EventBlocked       // A move was rejected at the grid edge
	EventIgnored       // A button press hit a protected or out-of-range cell
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventReveal:
		return "Reveal"
	case EventMark:
		return "Mark"
	case EventMove:
		return "Move"
	case EventBlocked:
		return "Blocked"
	case EventIgnored:
		return "Ignored"
	default:
		return "Unknown"
	}
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	Event  Event
	CellX  int // Cell affected by a reveal or mark
	CellY  int
	Paused bool
}

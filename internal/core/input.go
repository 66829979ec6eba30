package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platforms map their keys or buttons onto these; the game never sees raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // D-pad left
	ActionRight            // D-pad right
	ActionUp               // D-pad up
	ActionDown             // D-pad down
	ActionPrimary          // A button - reveal
	ActionSecondary        // B button - cycle mark
	ActionPause            // Start - pause/unpause
	ActionRestart          // Select - new board
	ActionQuit             // Leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// An action present in the frame was just pressed during that tick; platforms
// clear the frame after every step so each press is seen exactly once.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// JustPressed is an alias of Has that reads better at call sites handling buttons.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Has(a)
}

// XTri returns the net horizontal direction pressed this frame: -1, 0 or +1.
// Pressing both directions cancels out.
func (f InputFrame) XTri() int {
	return tri(f.Has(ActionLeft), f.Has(ActionRight))
}

// YTri returns the net vertical direction pressed this frame: -1, 0 or +1.
// Up is negative because screen Y grows downward.
func (f InputFrame) YTri() int {
	return tri(f.Has(ActionUp), f.Has(ActionDown))
}

func tri(neg, pos bool) int {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

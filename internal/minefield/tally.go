package minefield

import "github.com/vovakirdan/minefield/internal/core"

// Tally counts what happened during a session.
type Tally struct {
	Reveals int
	Marks   int
	Moves   int
	Blocked int
}

// Record adds one step's outcome.
func (t *Tally) Record(res core.StepResult) {
	switch res.Event {
	case core.EventReveal:
		t.Reveals++
	case core.EventMark:
		t.Marks++
	case core.EventMove:
		t.Moves++
	case core.EventBlocked:
		t.Blocked++
	}
}

// Empty reports whether nothing was recorded.
func (t Tally) Empty() bool {
	return t == Tally{}
}

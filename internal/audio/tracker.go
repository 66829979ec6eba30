package audio

import (
	"time"

	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/minefield"
)

// Rest marks a silent row in a pattern.
const Rest = -1

// Scale is the note table for the background music, an A minor pentatonic.
var Scale = []float64{220.00, 261.63, 293.66, 329.63, 392.00, 440.00, 523.25, 587.33}

const noteLength = 180 * time.Millisecond

// NoteClip returns the clip handle of scale degree i.
func NoteClip(i int) core.Clip {
	return minefield.ClipMusic + core.Clip(i)
}

// DefaultPattern is the looping background melody, one scale degree per row.
var DefaultPattern = []int{
	0, Rest, 2, Rest, 3, 4, Rest, 3,
	5, Rest, 4, 3, 2, Rest, 1, Rest,
	0, Rest, 2, 3, 4, Rest, 6, 5,
	4, Rest, 3, Rest, 2, 1, 0, Rest,
}

// Tracker steps a note pattern once per frame and triggers each row's note
// through the sink when the row starts.
type Tracker struct {
	pattern      []int
	framesPerRow int
	frame        int
	row          int
	paused       bool
}

// NewTracker creates a tracker over pattern advancing one row every
// framesPerRow frames. Values below one are treated as one.
func NewTracker(pattern []int, framesPerRow int) *Tracker {
	if framesPerRow < 1 {
		framesPerRow = 1
	}
	return &Tracker{pattern: pattern, framesPerRow: framesPerRow}
}

// Step advances one frame.
func (t *Tracker) Step(sink core.AudioSink) {
	if t.paused || len(t.pattern) == 0 {
		return
	}
	if t.frame == 0 {
		if note := t.pattern[t.row]; note != Rest && note >= 0 && note < len(Scale) {
			sink.Play(NoteClip(note))
		}
	}
	t.frame++
	if t.frame == t.framesPerRow {
		t.frame = 0
		t.row = (t.row + 1) % len(t.pattern)
	}
}

// Row returns the current pattern row.
func (t *Tracker) Row() int {
	return t.row
}

// SetPaused stops or resumes the tracker without losing its position.
func (t *Tracker) SetPaused(p bool) {
	t.paused = p
}

// Reset rewinds to the first row.
func (t *Tracker) Reset() {
	t.frame = 0
	t.row = 0
}

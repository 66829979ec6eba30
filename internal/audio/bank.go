// Package audio plays the game's sound clips through the system speaker.
// Clips are synthesised once at startup into beep buffers; the frame loop
// requests them by handle through core.AudioSink and never waits on playback.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/minefield"
)

// SampleRate is the output rate used for every clip.
const SampleRate = beep.SampleRate(44100)

// Wave selects the tone generator for a clip.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Tone describes a synthesised clip.
type Tone struct {
	Wave     Wave
	Freq     float64       // Hz
	Duration time.Duration // Clip length
	Gain     float64       // Linear, 0-1
}

// Bank holds decoded clips keyed by handle.
type Bank struct {
	format beep.Format
	clips  map[core.Clip]*beep.Buffer
}

// NewBank creates an empty clip bank.
func NewBank() *Bank {
	return &Bank{
		format: beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2},
		clips:  make(map[core.Clip]*beep.Buffer),
	}
}

// Add synthesises a tone and registers it under c, replacing any previous clip.
func (b *Bank) Add(c core.Clip, t Tone) error {
	tone, err := oscillator(t.Wave, t.Freq)
	if err != nil {
		return fmt.Errorf("audio: clip %d: %w", c, err)
	}

	n := SampleRate.N(t.Duration)
	buf := beep.NewBuffer(b.format)
	buf.Append(withGain(beep.Take(n, tone), t.Gain))
	b.clips[c] = buf
	return nil
}

// Streamer returns a fresh playback streamer for c.
func (b *Bank) Streamer(c core.Clip) (beep.StreamSeeker, bool) {
	buf, ok := b.clips[c]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// Len returns the clip length in samples, or 0 for an unknown clip.
func (b *Bank) Len(c core.Clip) int {
	if buf, ok := b.clips[c]; ok {
		return buf.Len()
	}
	return 0
}

// Count returns the number of registered clips.
func (b *Bank) Count() int {
	return len(b.clips)
}

func oscillator(w Wave, freq float64) (beep.Streamer, error) {
	switch w {
	case WaveSquare:
		return generators.SquareTone(SampleRate, freq)
	case WaveTriangle:
		return generators.TriangleTone(SampleRate, freq)
	default:
		return generators.SineTone(SampleRate, freq)
	}
}

// withGain scales a stream by a linear gain. Zero or less is silent;
// math.Log2(0) would be -Inf.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// MoveTone is the short blip played when the cursor moves.
var MoveTone = Tone{Wave: WaveSquare, Freq: 880, Duration: 40 * time.Millisecond, Gain: 0.4}

// DefaultBank builds the clips the game uses, scaled by the master volume.
// Music notes are registered only when music is true.
func DefaultBank(volume float64, music bool) (*Bank, error) {
	b := NewBank()

	move := MoveTone
	move.Gain *= volume
	if err := b.Add(minefield.ClipCursorMove, move); err != nil {
		return nil, err
	}

	if !music {
		return b, nil
	}
	for i, freq := range Scale {
		note := Tone{Wave: WaveTriangle, Freq: freq, Duration: noteLength, Gain: 0.25 * volume}
		if err := b.Add(NoteClip(i), note); err != nil {
			return nil, err
		}
	}
	return b, nil
}

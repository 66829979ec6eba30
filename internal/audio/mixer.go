package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/minefield/internal/core"
)

// Mixer plays bank clips on the speaker. It satisfies core.AudioSink.
// Until Start succeeds every Play is dropped, so a missing audio device
// leaves the game silent rather than failing.
type Mixer struct {
	mu      sync.Mutex
	bank    *Bank
	mixer   *beep.Mixer
	started bool
	played  uint64
	dropped uint64
	logger  *log.Logger
}

var _ core.AudioSink = (*Mixer)(nil)

// NewMixer creates a mixer over bank. logger may be nil.
func NewMixer(bank *Bank, logger *log.Logger) *Mixer {
	return &Mixer{
		bank:   bank,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Start opens the speaker and attaches the mixer to it.
func (m *Mixer) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.started = true
	if m.logger != nil {
		m.logger.Debug("audio started", "clips", m.bank.Count(), "rate", int(SampleRate))
	}
	return nil
}

// Play queues clip c. Unknown clips and plays before Start are dropped.
func (m *Mixer) Play(c core.Clip) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		m.dropped++
		return
	}
	s, ok := m.bank.Streamer(c)
	if !ok {
		m.dropped++
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	m.played++
}

// Stats returns how many clips were played and dropped.
func (m *Mixer) Stats() (played, dropped uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played, m.dropped
}

// Close silences all voices and releases the speaker.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.started = false
}

// Open builds the default bank and starts a mixer for it.
// A device failure is logged and the returned sink is silent.
func Open(volume float64, music bool, logger *log.Logger) (core.AudioSink, func()) {
	bank, err := DefaultBank(volume, music)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return core.NopSink{}, func() {}
	}
	m := NewMixer(bank, logger)
	if err := m.Start(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return core.NopSink{}, func() {}
	}
	return m, m.Close
}

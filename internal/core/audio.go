package core

// Clip is an opaque handle to a decoded sound, assigned when the clip bank is built.
type Clip int

// AudioSink accepts fire-and-forget playback requests.
// Implementations own channel allocation; callers never wait on playback.
type AudioSink interface {
	Play(c Clip)
}

// NopSink discards every request. Used when audio is disabled or unavailable.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Clip) {}

// Package audio defines the sink the game sends its sound cues to.
// The device-backed implementation lives in internal/audio/speaker.
package audio

// Sink receives the game's audio signals. Implementations must not block.
type Sink interface {
	// SetThrust starts or stops the engine rumble.
	SetThrust(on bool)
	// Explode plays one explosion.
	Explode()
}

// Nop discards every signal. SSH sessions use it: sound cannot travel
// over a terminal.
type Nop struct{}

func (Nop) SetThrust(bool) {}
func (Nop) Explode()       {}

var _ Sink = Nop{}

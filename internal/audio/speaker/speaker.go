// Package speaker plays the game's sounds on the local audio device.
// It needs cgo and a sound server; headless frontends use audio.Nop instead.
package speaker

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	device "github.com/gopxl/beep/speaker"

	"github.com/tomz197/asteroids-ufo/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

const boomDuration = 600 * time.Millisecond

// Speaker plays sounds on the local audio device.
type Speaker struct {
	mixer  *beep.Mixer
	thrust *beep.Ctrl
}

// New opens the audio device. The thrust rumble is mixed in from the
// start and paused until SetThrust(true).
func New() (*Speaker, error) {
	if err := device.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{
		mixer: &beep.Mixer{},
		thrust: &beep.Ctrl{
			Streamer: withVolume(NewRumbleGenerator(sampleRate), 0.4),
			Paused:   true,
		},
	}
	s.mixer.Add(s.thrust)
	device.Play(s.mixer)
	return s, nil
}

// SetThrust pauses or resumes the engine rumble.
func (s *Speaker) SetThrust(on bool) {
	device.Lock()
	s.thrust.Paused = !on
	device.Unlock()
}

// Explode mixes in a new explosion.
func (s *Speaker) Explode() {
	boom := beep.Take(sampleRate.N(boomDuration), NewBoomGenerator(sampleRate, 1))
	device.Lock()
	s.mixer.Add(boom)
	device.Unlock()
}

// Close silences every sound and releases the device.
func (s *Speaker) Close() {
	device.Clear()
	device.Close()
}

var _ audio.Sink = (*Speaker)(nil)

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// RumbleGenerator is an endless low engine drone.
type RumbleGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewRumbleGenerator creates an engine drone generator.
func NewRumbleGenerator(sr beep.SampleRate) *RumbleGenerator {
	return &RumbleGenerator{sr: sr, seed: 1}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/math.MaxUint32*2 - 1

		sample := 0.5*math.Sin(2*math.Pi*55*t) + 0.2*noise
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error { return nil }

// BoomGenerator is a noise burst with an exponential decay.
type BoomGenerator struct {
	sr   beep.SampleRate
	pos  int
	gain float64
	seed uint32
}

// NewBoomGenerator creates an explosion generator. seed varies the noise.
func NewBoomGenerator(sr beep.SampleRate, seed uint32) *BoomGenerator {
	return &BoomGenerator{sr: sr, gain: 0.8, seed: seed}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/math.MaxUint32*2 - 1

		envelope := math.Exp(-t * 6)
		sample := g.gain * envelope * (0.7*noise + 0.3*math.Sin(2*math.Pi*60*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error { return nil }

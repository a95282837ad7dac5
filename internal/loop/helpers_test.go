package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	appconfig "github.com/tomz197/asteroids-ufo/internal/config"
	"github.com/tomz197/asteroids-ufo/internal/input"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/phase"
)

const frame = 16 * time.Millisecond

type fakeAudio struct {
	explosions int
	thrust     []bool
}

func (f *fakeAudio) SetThrust(on bool) { f.thrust = append(f.thrust, on) }
func (f *fakeAudio) Explode()          { f.explosions++ }

type memStore struct {
	high  uint32
	saves []uint32
}

func (m *memStore) Load() (uint32, error) { return m.high, nil }
func (m *memStore) Save(high uint32) error {
	m.high = high
	m.saves = append(m.saves, high)
	return nil
}

func testConfig(initial int) appconfig.GameConfig {
	cfg := appconfig.Defaults().Game
	cfg.InitialAsteroids = initial
	return cfg
}

func newTestGame(t *testing.T, initial int) (*Game, *fakeAudio, *memStore) {
	t.Helper()
	fa := &fakeAudio{}
	st := &memStore{}
	g := NewGame(Options{
		Config: testConfig(initial),
		Store:  st,
		Audio:  fa,
		Rand:   rand.New(rand.NewSource(1)),
	})
	return g, fa, st
}

// toPlaying presses space on the title screen and waits out the countdown.
func toPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Tick(frame, input.Input{Space: true})
	if g.State() != phase.GetReady {
		t.Fatalf("after space: state = %v, want GetReady", g.State())
	}
	for i := 0; i < 100 && g.State() == phase.GetReady; i++ {
		g.Tick(100*time.Millisecond, input.Input{})
	}
	if g.State() != phase.Playing {
		t.Fatalf("after countdown: state = %v, want Playing", g.State())
	}
}

func asteroids(g *Game) []*object.Asteroid {
	var out []*object.Asteroid
	g.world.EachAsteroid(func(_ object.ID, a *object.Asteroid) { out = append(out, a) })
	return out
}

// shootEveryAsteroid parks a motionless player bullet on each asteroid.
func shootEveryAsteroid(g *Game) {
	for _, a := range asteroids(g) {
		g.world.AddBullet(object.NewBullet(a.Pos, mgl64.Vec2{}, 7.5, 1, object.OwnerShip))
	}
}

func freeze(g *Game) {
	g.world.EachBody(func(b *object.Body) { b.Vel = mgl64.Vec2{} })
}

// parkAsteroids moves every asteroid to pos, out of the way of the test.
func parkAsteroids(g *Game, pos mgl64.Vec2) {
	for _, a := range asteroids(g) {
		a.Pos = pos
	}
}

// waitOut ticks with no keys down until d has passed.
func waitOut(g *Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed <= d; elapsed += frame {
		g.Tick(frame, input.Input{})
	}
}

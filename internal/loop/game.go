package loop

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/tomz197/asteroids-ufo/internal/audio"
	appconfig "github.com/tomz197/asteroids-ufo/internal/config"
	"github.com/tomz197/asteroids-ufo/internal/event"
	"github.com/tomz197/asteroids-ufo/internal/input"
	"github.com/tomz197/asteroids-ufo/internal/logging"
	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/phase"
	"github.com/tomz197/asteroids-ufo/internal/score"
)

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	Config appconfig.GameConfig
	Store  score.Store
	Audio  audio.Sink
	Logger *zap.Logger
	Rand   *rand.Rand
}

// Game is the complete state of one running game. It is not safe for
// concurrent use: one goroutine owns it and calls Tick.
type Game struct {
	cfg  appconfig.GameConfig
	half mgl64.Vec2

	world   *object.World
	bus     *event.Bus
	machine *phase.Machine
	runner  *Runner

	board         score.Board
	asteroidCount int
	countdown     Timer
	ufoTimer      Timer
	restartArm    Timer
	bossCooldown  float64

	input input.Input
	prev  input.Input

	rng   *rand.Rand
	store score.Store
	audio audio.Sink
	log   *zap.Logger

	colliders []object.Collider
	thrusting bool
}

// NewGame builds a game on the title screen. The high score is loaded
// from the store.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	def := appconfig.Defaults().Game
	if cfg.InitialAsteroids <= 0 {
		cfg.InitialAsteroids = def.InitialAsteroids
	}
	log := logging.OrNop(opts.Logger)
	if err := cfg.CheckWorldSize(); err != nil {
		log.Warn("using default world size", zap.Error(err))
		cfg.WorldWidth, cfg.WorldHeight = def.WorldWidth, def.WorldHeight
	}
	if cfg.Countdown <= 0 {
		cfg.Countdown = def.Countdown
	}
	if cfg.UFOSpawnInterval <= 0 {
		cfg.UFOSpawnInterval = def.UFOSpawnInterval
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}

	g := &Game{
		cfg:           cfg,
		half:          mgl64.Vec2{cfg.WorldWidth / 2, cfg.WorldHeight / 2},
		world:         object.NewWorld(),
		bus:           event.NewBus(),
		machine:       phase.NewMachine(phase.Starting),
		runner:        NewRunner(),
		asteroidCount: cfg.InitialAsteroids,
		countdown:     NewTimer(cfg.Countdown, false),
		ufoTimer:      NewTimer(cfg.UFOSpawnInterval, true),
		restartArm:    NewTimer(config.RestartArmDelay, false),
		rng:           rng,
		store:         opts.Store,
		audio:         sink,
		log:           log,
	}
	g.board = score.NewBoard(score.LoadHighScore(g.store, log))
	registerSystems(g.runner)

	g.enter(phase.Starting)
	log.Info("game created",
		zap.Int("initial_asteroids", cfg.InitialAsteroids),
		zap.Uint32("high_score", g.board.High))
	return g
}

// Tick advances the game by dt using this frame's input.
func (g *Game) Tick(dt time.Duration, in input.Input) {
	dt = min(max(dt, 0), config.MaxDelta)

	g.prev = g.input
	g.input = in

	g.runner.Tick(g, dt.Seconds())
	g.bus.Clear()
}

// Close persists the high score. The game must not be ticked afterwards.
func (g *Game) Close() {
	g.audio.SetThrust(false)
	score.SaveHighScore(g.store, g.board.High, g.log)
}

// pressed reports a key that went down this frame.
func (g *Game) pressed(key func(input.Input) bool) bool {
	return key(g.input) && !key(g.prev)
}

func keySpace(in input.Input) bool { return in.Space }
func keyEnter(in input.Input) bool { return in.Enter }
func keyBoss(in input.Input) bool  { return in.Boss }

// State returns the current phase.
func (g *Game) State() phase.State { return g.machine.Current() }

// Score returns the running score.
func (g *Game) Score() uint32 { return g.board.Score }

// HighScore returns the best score seen, persisted or not.
func (g *Game) HighScore() uint32 { return g.board.High }

// AsteroidCount returns the size of the next wave.
func (g *Game) AsteroidCount() int { return g.asteroidCount }

// Countdown returns the whole seconds left before play starts.
func (g *Game) Countdown() int { return g.countdown.RemainingSeconds() }

// World exposes the entity store for rendering and tests.
func (g *Game) World() *object.World { return g.world }

// HalfExtent returns half the world size; the world spans [-half, half].
func (g *Game) HalfExtent() mgl64.Vec2 { return g.half }

package loop

import (
	"sort"

	"github.com/tomz197/asteroids-ufo/internal/phase"
)

// Stage orders systems within a tick. Producers of an event always sit in an
// earlier stage than its consumers, so every event is read in the tick it is
// emitted.
type Stage int

const (
	StageInput Stage = iota
	StageControl
	StageMotion
	StageDetect
	StageResolve
	StageEffects
	StageTransition
	StageCleanup
)

// stateSet is a bitmask of game states a system runs in.
type stateSet uint8

func states(ss ...phase.State) stateSet {
	var set stateSet
	for _, s := range ss {
		set |= 1 << s
	}
	return set
}

func (set stateSet) has(s phase.State) bool {
	return set&(1<<s) != 0
}

var (
	anyState  = states(phase.Starting, phase.GetReady, phase.Playing, phase.GameOver, phase.Boss)
	notBoss   = states(phase.Starting, phase.GetReady, phase.Playing, phase.GameOver)
	inPlay    = states(phase.Playing)
	moving    = states(phase.Starting, phase.Playing, phase.GameOver)
	atPrompts = states(phase.Starting, phase.GameOver)
)

// System is one step of the per-tick pipeline.
type System struct {
	Name   string
	Stage  Stage
	States stateSet
	Run    func(g *Game, dt float64)
}

// Runner executes systems in stage order, registration order within a stage.
// A system's state gate is checked right before it runs, so a transition
// made earlier in the tick is already visible.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{systems: make([]System, 0, 24)}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner) Tick(g *Game, dt float64) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.States.has(g.machine.Current()) {
			s.Run(g, dt)
		}
	}
}

// Names lists the systems in execution order.
func (r *Runner) Names() []string {
	r.ensureSorted()
	names := make([]string, len(r.systems))
	for i, s := range r.systems {
		names[i] = s.Name
	}
	return names
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Stage < r.systems[j].Stage
		})
		r.sorted = true
	}
}

// registerSystems wires the gameplay pipeline.
func registerSystems(r *Runner) {
	r.Register(System{"boss-key", StageInput, anyState, bossKeySystem})
	r.Register(System{"start-key", StageInput, atPrompts, startKeySystem})

	r.Register(System{"ship-control", StageControl, inPlay, shipControlSystem})
	r.Register(System{"ship-fire", StageControl, inPlay, shipFireSystem})
	r.Register(System{"ufo-spawn", StageControl, inPlay, ufoSpawnSystem})
	r.Register(System{"ufo-control", StageControl, inPlay, ufoControlSystem})

	r.Register(System{"integrate", StageMotion, moving, integrateSystem})
	r.Register(System{"bullet-expiry", StageMotion, moving, bulletExpirySystem})

	r.Register(System{"detect-collisions", StageDetect, inPlay, detectSystem})

	r.Register(System{"resolve-bullet-asteroid", StageResolve, inPlay, resolveBulletAsteroid})
	r.Register(System{"resolve-ship-asteroid", StageResolve, inPlay, resolveShipAsteroid})
	r.Register(System{"resolve-ship-enemy-bullet", StageResolve, inPlay, resolveShipEnemyBullet})
	r.Register(System{"resolve-bullet-ufo", StageResolve, inPlay, resolveBulletUFO})

	r.Register(System{"score", StageEffects, notBoss, scoreSystem})
	r.Register(System{"explosion-animate", StageEffects, notBoss, explosionAnimateSystem})
	r.Register(System{"explosion-spawn", StageEffects, notBoss, explosionSpawnSystem})
	r.Register(System{"thrust-audio", StageEffects, anyState, thrustAudioSystem})

	// Ship loss is checked before wave clear: losing the ship on the tick
	// the last asteroid dies ends the game.
	r.Register(System{"countdown", StageTransition, states(phase.GetReady), countdownSystem})
	r.Register(System{"ship-lost", StageTransition, inPlay, shipLostSystem})
	r.Register(System{"wave-cleared", StageTransition, inPlay, waveClearedSystem})

	r.Register(System{"compact", StageCleanup, anyState, compactSystem})
}

package loop

import (
	"slices"
	"testing"

	"github.com/tomz197/asteroids-ufo/internal/phase"
)

func TestRunnerOrdersByStage(t *testing.T) {
	r := NewRunner()
	var got []string
	rec := func(name string) func(*Game, float64) {
		return func(*Game, float64) { got = append(got, name) }
	}
	r.Register(System{"cleanup", StageCleanup, anyState, rec("cleanup")})
	r.Register(System{"resolve-a", StageResolve, anyState, rec("resolve-a")})
	r.Register(System{"input", StageInput, anyState, rec("input")})
	r.Register(System{"resolve-b", StageResolve, anyState, rec("resolve-b")})

	g := &Game{machine: phase.NewMachine(phase.Playing)}
	r.Tick(g, 0)

	want := []string{"input", "resolve-a", "resolve-b", "cleanup"}
	if !slices.Equal(got, want) {
		t.Errorf("ran %v, want %v", got, want)
	}
	if names := r.Names(); !slices.Equal(names, want) {
		t.Errorf("Names = %v, want %v", names, want)
	}
}

func TestRunnerGatesOnCurrentState(t *testing.T) {
	r := NewRunner()
	g := &Game{machine: phase.NewMachine(phase.Starting)}
	var ran []string

	r.Register(System{"start", StageInput, atPrompts, func(g *Game, _ float64) {
		ran = append(ran, "start")
		g.machine.Fire(phase.SpacePressed)
	}})
	r.Register(System{"countdown", StageTransition, states(phase.GetReady), func(*Game, float64) {
		ran = append(ran, "countdown")
	}})
	r.Register(System{"play", StageControl, inPlay, func(*Game, float64) {
		ran = append(ran, "play")
	}})

	r.Tick(g, 0)
	if want := []string{"start", "countdown"}; !slices.Equal(ran, want) {
		t.Errorf("ran %v, want %v", ran, want)
	}
}

func TestGameplayPipeline(t *testing.T) {
	r := NewRunner()
	registerSystems(r)
	names := r.Names()

	before := func(a, b string) {
		t.Helper()
		ia, ib := slices.Index(names, a), slices.Index(names, b)
		if ia < 0 || ib < 0 || ia >= ib {
			t.Errorf("%s should run before %s (order %v)", a, b, names)
		}
	}
	before("detect-collisions", "resolve-bullet-asteroid")
	before("resolve-bullet-ufo", "score")
	before("resolve-ship-asteroid", "explosion-spawn")
	before("explosion-animate", "explosion-spawn")
	before("ship-lost", "wave-cleared")
	before("wave-cleared", "compact")
}

func TestStateSets(t *testing.T) {
	tests := []struct {
		set   stateSet
		in    []phase.State
		notIn []phase.State
	}{
		{moving, []phase.State{phase.Starting, phase.Playing, phase.GameOver}, []phase.State{phase.GetReady, phase.Boss}},
		{atPrompts, []phase.State{phase.Starting, phase.GameOver}, []phase.State{phase.GetReady, phase.Playing, phase.Boss}},
		{notBoss, []phase.State{phase.Starting, phase.GetReady, phase.Playing, phase.GameOver}, []phase.State{phase.Boss}},
	}
	for _, tt := range tests {
		for _, s := range tt.in {
			if !tt.set.has(s) {
				t.Errorf("set %08b missing %v", tt.set, s)
			}
		}
		for _, s := range tt.notIn {
			if tt.set.has(s) {
				t.Errorf("set %08b contains %v", tt.set, s)
			}
		}
	}
}

package object

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestAsteroid(rng *rand.Rand, x, y float64) *Asteroid {
	return NewAsteroid(mgl64.Vec2{x, y}, mgl64.Vec2{}, 1, rng)
}

func TestSpawnShipIsSingleton(t *testing.T) {
	w := NewWorld()
	ref, first := w.SpawnShip(NewShip(mgl64.Vec2{}, 30))

	ref2, second := w.SpawnShip(NewShip(mgl64.Vec2{100, 0}, 30))
	if second != first || ref2 != ref {
		t.Fatal("second SpawnShip replaced the live ship")
	}
	if w.Ship().Pos != (mgl64.Vec2{}) {
		t.Errorf("ship moved to %v", w.Ship().Pos)
	}

	if !w.Despawn(ref) {
		t.Fatal("Despawn(ship) = false")
	}
	if w.Ship() != nil {
		t.Fatal("ship still present")
	}
	if w.Despawn(ref) {
		t.Error("second Despawn(ship) = true")
	}

	ref3, _ := w.SpawnShip(NewShip(mgl64.Vec2{}, 30))
	if ref3 == ref {
		t.Error("respawned ship reused the old ID")
	}
	if w.Alive(ref) {
		t.Error("stale ship ref reported alive")
	}
}

func TestSpawnUFOOnlyOne(t *testing.T) {
	w := NewWorld()
	if _, ok := w.SpawnUFO(NewUFO(mgl64.Vec2{}, 50, 1)); !ok {
		t.Fatal("first SpawnUFO failed")
	}
	if _, ok := w.SpawnUFO(NewUFO(mgl64.Vec2{10, 10}, 50, 1)); ok {
		t.Fatal("second SpawnUFO succeeded while one is alive")
	}
	if w.UFO().Pos != (mgl64.Vec2{}) {
		t.Error("live UFO was replaced")
	}
}

func TestDespawnStaleRefs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	a := w.AddAsteroid(newTestAsteroid(rng, 0, 0))
	b := w.AddBullet(NewBullet(mgl64.Vec2{}, mgl64.Vec2{}, 7.5, 1, OwnerShip))

	tests := []struct {
		name string
		ref  Ref
		want bool
	}{
		{"asteroid", a, true},
		{"asteroid again", a, false},
		{"bullet", b, true},
		{"wrong kind", Ref{KindBullet, a.ID}, false},
		{"unknown id", Ref{KindAsteroid, 999}, false},
		{"no ship", Ref{KindShip, 1}, false},
		{"zero ref", Ref{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Despawn(tc.ref); got != tc.want {
				t.Errorf("Despawn(%v) = %v, want %v", tc.ref, got, tc.want)
			}
		})
	}
}

func TestCollidersGroupedByKind(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	w.AddBullet(NewBullet(mgl64.Vec2{}, mgl64.Vec2{}, 7.5, 1, OwnerUFO))
	w.SpawnUFO(NewUFO(mgl64.Vec2{}, 50, 1))
	w.AddAsteroid(newTestAsteroid(rng, 1, 1))
	w.SpawnShip(NewShip(mgl64.Vec2{}, 30))
	w.AddExplosion(NewExplosion(mgl64.Vec2{}, ExplosionStyle{Radius: 10}))

	got := w.Colliders(nil)
	want := []Kind{KindShip, KindAsteroid, KindBullet, KindUFO}
	if len(got) != len(want) {
		t.Fatalf("len(Colliders) = %d, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Ref.Kind != k {
			t.Errorf("Colliders[%d].Kind = %v, want %v", i, got[i].Ref.Kind, k)
		}
	}
	if got[2].Owner != OwnerUFO {
		t.Error("bullet owner not carried into collider")
	}
}

func TestCompactKeepsOrderAndLookups(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	var refs []Ref
	for i := 0; i < 6; i++ {
		refs = append(refs, w.AddAsteroid(newTestAsteroid(rng, float64(i), 0)))
	}
	w.Despawn(refs[1])
	w.Despawn(refs[4])
	w.Compact()

	if n := w.AsteroidCount(); n != 4 {
		t.Fatalf("AsteroidCount = %d, want 4", n)
	}
	var xs []float64
	w.EachAsteroid(func(_ ID, a *Asteroid) { xs = append(xs, a.Pos.X()) })
	wantXs := []float64{0, 2, 3, 5}
	for i := range wantXs {
		if xs[i] != wantXs[i] {
			t.Fatalf("order after compact = %v, want %v", xs, wantXs)
		}
	}
	a, ok := w.Asteroid(refs[5].ID)
	if !ok || a.Pos.X() != 5 {
		t.Error("lookup after compact returned the wrong asteroid")
	}
}

func TestEachSkipsEntitiesAddedDuringIteration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	w.AddAsteroid(newTestAsteroid(rng, 0, 0))

	visited := 0
	w.EachAsteroid(func(_ ID, a *Asteroid) {
		visited++
		w.AddAsteroid(newTestAsteroid(rng, 1, 1))
	})
	if visited != 1 {
		t.Errorf("visited = %d, want 1", visited)
	}
	if w.AsteroidCount() != 2 {
		t.Errorf("AsteroidCount = %d, want 2", w.AsteroidCount())
	}
}

func TestBulletCountsAndClear(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := NewWorld()
	w.AddBullet(NewBullet(mgl64.Vec2{}, mgl64.Vec2{}, 7.5, 1, OwnerShip))
	w.AddBullet(NewBullet(mgl64.Vec2{}, mgl64.Vec2{}, 7.5, 1, OwnerShip))
	w.AddBullet(NewBullet(mgl64.Vec2{}, mgl64.Vec2{}, 7.5, 1, OwnerUFO))
	w.AddAsteroid(newTestAsteroid(rng, 0, 0))

	if n := w.PlayerBulletCount(); n != 2 {
		t.Errorf("PlayerBulletCount = %d, want 2", n)
	}
	w.ClearBullets()
	if w.BulletCount() != 0 || w.AsteroidCount() != 1 {
		t.Errorf("after ClearBullets bullets=%d asteroids=%d", w.BulletCount(), w.AsteroidCount())
	}

	w.SpawnShip(NewShip(mgl64.Vec2{}, 30))
	w.Clear()
	if w.Ship() != nil || w.AsteroidCount() != 0 {
		t.Error("Clear left entities behind")
	}
}

func TestAsteroidGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, scale := range []float64{2, 1, 0.5, 0.25} {
		a := NewAsteroid(mgl64.Vec2{}, mgl64.Vec2{}, scale, rng)
		if a.Radius != 65*scale {
			t.Errorf("scale %v: radius = %v", scale, a.Radius)
		}
		if len(a.Vertices) != 25 {
			t.Fatalf("vertices = %d, want 25", len(a.Vertices))
		}
		for _, v := range a.Vertices {
			if v < 50*scale || v > 75*scale {
				t.Errorf("scale %v: vertex distance %v out of range", scale, v)
			}
		}
	}
}

func TestExplosionFadesOut(t *testing.T) {
	style := ExplosionStyle{Radius: 10, Width: 5, Grow: 1.05, Thin: 0.15, Fade: 0.03, MaxWide: 5}
	e := NewExplosion(mgl64.Vec2{}, style)

	steps := 0
	prev := e.Radius
	for !e.Done() {
		e.Advance(style)
		steps++
		if e.Radius <= prev {
			t.Fatal("radius did not grow")
		}
		prev = e.Radius
		if steps > 100 {
			t.Fatal("explosion never finished")
		}
	}
	if steps != 34 {
		t.Errorf("steps = %d, want 34", steps)
	}
	if e.Width < 0 {
		t.Errorf("width = %v, want clamped at 0", e.Width)
	}
}

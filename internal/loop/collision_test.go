package loop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/object"
)

func collider(kind object.Kind, id object.ID, x, y, r float64) object.Collider {
	return object.Collider{
		Ref:    object.Ref{Kind: kind, ID: id},
		Pos:    mgl64.Vec2{x, y},
		Radius: r,
	}
}

func TestDetectCollisionsBoundary(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want int
	}{
		{"overlapping", 4, 1},
		{"touching", 5, 1},
		{"apart", 5.001, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := []object.Collider{
				collider(object.KindAsteroid, 1, 0, 0, 3),
				collider(object.KindBullet, 2, tt.dx, 0, 2),
			}
			if got := len(DetectCollisions(cs, nil)); got != tt.want {
				t.Errorf("got %d collisions, want %d", got, tt.want)
			}
		})
	}
}

func TestDetectCollisionsOrdersPairByKind(t *testing.T) {
	cs := []object.Collider{
		collider(object.KindUFO, 4, 0, 0, 10),
		collider(object.KindBullet, 3, 1, 0, 1),
		collider(object.KindShip, 1, 0, 1, 5),
	}
	got := DetectCollisions(cs, nil)
	if len(got) != 3 {
		t.Fatalf("got %d collisions, want 3", len(got))
	}
	for _, c := range got {
		if c.A.Ref.Kind > c.B.Ref.Kind {
			t.Errorf("pair %v/%v not ordered by kind", c.A.Ref.Kind, c.B.Ref.Kind)
		}
	}
}

func TestDetectCollisionsEachPairOnce(t *testing.T) {
	cs := []object.Collider{
		collider(object.KindAsteroid, 1, 0, 0, 10),
		collider(object.KindAsteroid, 2, 0, 0, 10),
		collider(object.KindAsteroid, 3, 0, 0, 10),
		collider(object.KindAsteroid, 4, 0, 0, 10),
	}
	if got := len(DetectCollisions(cs, nil)); got != 6 {
		t.Errorf("got %d collisions, want 6", got)
	}
}

func TestCollisionMatch(t *testing.T) {
	c := Collision{
		A: collider(object.KindShip, 1, 0, 0, 1),
		B: collider(object.KindBullet, 2, 0, 0, 1),
	}
	bullet, ship, ok := c.match(object.KindBullet, object.KindShip)
	if !ok || bullet.Ref.ID != 2 || ship.Ref.ID != 1 {
		t.Errorf("match(bullet, ship) = %v, %v, %v", bullet.Ref, ship.Ref, ok)
	}
	if _, _, ok := c.match(object.KindBullet, object.KindAsteroid); ok {
		t.Error("ship/bullet matched bullet/asteroid")
	}
}

func TestChildScaleChain(t *testing.T) {
	var chain []float64
	scale := 2.0
	for {
		child, ok := childScale(scale)
		if !ok {
			break
		}
		chain = append(chain, child)
		scale = child
	}
	want := []float64{1, 0.5, 0.25, 0.125}
	if len(chain) != len(want) {
		t.Fatalf("chain = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %v, want %v", i, chain[i], want[i])
		}
	}
	if _, ok := childScale(0.2); ok {
		t.Error("0.2 should not split: 0.1 is not above the threshold")
	}
}

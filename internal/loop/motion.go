package loop

import (
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/physics"
)

// integrateSystem moves every body by its velocity and wraps it around the
// world edges. Asteroids and the ship also turn.
func integrateSystem(g *Game, dt float64) {
	g.world.EachBody(func(b *object.Body) {
		b.Pos = physics.Wrap(b.Pos.Add(b.Vel.Mul(dt)), g.half)
	})
	g.world.EachAsteroid(func(_ object.ID, a *object.Asteroid) {
		a.Angle += a.Spin * dt
	})
	if s := g.world.Ship(); s != nil {
		s.Angle += s.Spin * dt
	}
}

func bulletExpirySystem(g *Game, dt float64) {
	g.world.EachBullet(func(id object.ID, b *object.Bullet) {
		b.Life -= dt
		if b.Expired() {
			g.world.Despawn(object.Ref{Kind: object.KindBullet, ID: id})
		}
	})
}

func compactSystem(g *Game, _ float64) {
	g.world.Compact()
}

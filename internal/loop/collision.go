package loop

import (
	"github.com/tomz197/asteroids-ufo/internal/event"
	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/physics"
)

// Collision records one overlapping pair. A.Ref.Kind <= B.Ref.Kind.
type Collision struct {
	A, B object.Collider
}

// DetectCollisions tests every unordered pair of colliders once. Touching
// circles count as overlapping. Pairs are appended to out in sweep order.
func DetectCollisions(colliders []object.Collider, out []Collision) []Collision {
	for i := 0; i < len(colliders); i++ {
		a := colliders[i]
		for j := i + 1; j < len(colliders); j++ {
			b := colliders[j]
			if !physics.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			if b.Ref.Kind < a.Ref.Kind {
				out = append(out, Collision{A: b, B: a})
			} else {
				out = append(out, Collision{A: a, B: b})
			}
		}
	}
	return out
}

func detectSystem(g *Game, _ float64) {
	g.colliders = g.world.Colliders(g.colliders[:0])
	for _, c := range DetectCollisions(g.colliders, nil) {
		event.Emit(g.bus, c)
	}
}

// match returns the pair ordered as (kind a, kind b) when c is of that category.
func (c Collision) match(a, b object.Kind) (object.Collider, object.Collider, bool) {
	switch {
	case c.A.Ref.Kind == a && c.B.Ref.Kind == b:
		return c.A, c.B, true
	case c.A.Ref.Kind == b && c.B.Ref.Kind == a:
		return c.B, c.A, true
	}
	return object.Collider{}, object.Collider{}, false
}

// resolveBulletAsteroid destroys asteroids hit by player bullets. Each bullet
// takes out at most one asteroid: once it is gone later pairs naming it are
// skipped.
func resolveBulletAsteroid(g *Game, _ float64) {
	for _, c := range event.Read[Collision](g.bus) {
		bullet, rock, ok := c.match(object.KindBullet, object.KindAsteroid)
		if !ok || bullet.Owner != object.OwnerShip {
			continue
		}
		if !g.world.Alive(bullet.Ref) || !g.world.Alive(rock.Ref) {
			continue
		}
		a, _ := g.world.Asteroid(rock.Ref.ID)
		pos, scale := a.Pos, a.Scale

		g.world.Despawn(bullet.Ref)
		g.world.Despawn(rock.Ref)
		event.Emit(g.bus, ExplosionEvent{Pos: pos})
		event.Emit(g.bus, ScoreEvent{Delta: config.ScoreAsteroid})

		g.spawnFragment(pos, scale)
		g.spawnFragment(pos, scale)
	}
}

// resolveShipAsteroid destroys the ship when it touches an asteroid.
func resolveShipAsteroid(g *Game, _ float64) {
	for _, c := range event.Read[Collision](g.bus) {
		ship, rock, ok := c.match(object.KindShip, object.KindAsteroid)
		if !ok || !g.world.Alive(ship.Ref) || !g.world.Alive(rock.Ref) {
			continue
		}
		g.destroyShip(ship)
	}
}

// resolveShipEnemyBullet destroys the ship and the UFO bullet that hit it.
func resolveShipEnemyBullet(g *Game, _ float64) {
	for _, c := range event.Read[Collision](g.bus) {
		ship, bullet, ok := c.match(object.KindShip, object.KindBullet)
		if !ok || bullet.Owner != object.OwnerUFO {
			continue
		}
		if !g.world.Alive(ship.Ref) || !g.world.Alive(bullet.Ref) {
			continue
		}
		g.world.Despawn(bullet.Ref)
		g.destroyShip(ship)
	}
}

// resolveBulletUFO destroys the saucer when a player bullet hits it.
func resolveBulletUFO(g *Game, _ float64) {
	for _, c := range event.Read[Collision](g.bus) {
		bullet, ufo, ok := c.match(object.KindBullet, object.KindUFO)
		if !ok || bullet.Owner != object.OwnerShip {
			continue
		}
		if !g.world.Alive(bullet.Ref) || !g.world.Alive(ufo.Ref) {
			continue
		}
		pos := g.world.UFO().Pos
		g.world.Despawn(bullet.Ref)
		g.world.Despawn(ufo.Ref)
		event.Emit(g.bus, ExplosionEvent{Pos: pos})
		event.Emit(g.bus, ScoreEvent{Delta: config.ScoreUFO})
	}
}

func (g *Game) destroyShip(ship object.Collider) {
	pos := g.world.Ship().Pos
	g.world.Despawn(ship.Ref)
	event.Emit(g.bus, ExplosionEvent{Pos: pos})
	g.log.Debug("ship destroyed")
}

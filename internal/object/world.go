package object

// World owns every live entity of one game. The ship and the UFO are
// optional singletons; everything else lives in per-kind arenas.
type World struct {
	nextID ID

	ship   *Ship
	shipID ID
	ufo    *UFO
	ufoID  ID

	asteroids  arena[Asteroid]
	bullets    arena[Bullet]
	explosions arena[Explosion]
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		asteroids:  newArena[Asteroid](),
		bullets:    newArena[Bullet](),
		explosions: newArena[Explosion](),
	}
}

func (w *World) allocID() ID {
	w.nextID++
	return w.nextID
}

// SpawnShip stores s as the ship unless one is already alive, in which
// case the existing ship is returned and s is discarded.
func (w *World) SpawnShip(s *Ship) (Ref, *Ship) {
	if w.ship != nil {
		return Ref{KindShip, w.shipID}, w.ship
	}
	w.ship = s
	w.shipID = w.allocID()
	return Ref{KindShip, w.shipID}, s
}

// Ship returns the ship, or nil when there is none.
func (w *World) Ship() *Ship { return w.ship }

// SpawnUFO stores u as the UFO. It returns false, leaving the world
// unchanged, while another UFO is alive.
func (w *World) SpawnUFO(u *UFO) (Ref, bool) {
	if w.ufo != nil {
		return Ref{KindUFO, w.ufoID}, false
	}
	w.ufo = u
	w.ufoID = w.allocID()
	return Ref{KindUFO, w.ufoID}, true
}

// UFO returns the saucer, or nil when there is none.
func (w *World) UFO() *UFO { return w.ufo }

// UFORef returns a handle to the saucer. ok is false when there is none.
func (w *World) UFORef() (Ref, bool) {
	return Ref{KindUFO, w.ufoID}, w.ufo != nil
}

// AddAsteroid stores a and returns its handle.
func (w *World) AddAsteroid(a *Asteroid) Ref {
	id := w.allocID()
	w.asteroids.add(id, a)
	return Ref{KindAsteroid, id}
}

// AddBullet stores b and returns its handle.
func (w *World) AddBullet(b *Bullet) Ref {
	id := w.allocID()
	w.bullets.add(id, b)
	return Ref{KindBullet, id}
}

// AddExplosion stores e and returns its handle.
func (w *World) AddExplosion(e *Explosion) Ref {
	id := w.allocID()
	w.explosions.add(id, e)
	return Ref{KindExplosion, id}
}

// Asteroid looks an asteroid up by ID.
func (w *World) Asteroid(id ID) (*Asteroid, bool) { return w.asteroids.get(id) }

// Alive reports whether ref still names a live entity.
func (w *World) Alive(ref Ref) bool {
	switch ref.Kind {
	case KindShip:
		return w.ship != nil && w.shipID == ref.ID
	case KindUFO:
		return w.ufo != nil && w.ufoID == ref.ID
	case KindAsteroid:
		_, ok := w.asteroids.get(ref.ID)
		return ok
	case KindBullet:
		_, ok := w.bullets.get(ref.ID)
		return ok
	case KindExplosion:
		_, ok := w.explosions.get(ref.ID)
		return ok
	}
	return false
}

// Despawn removes the entity named by ref. It returns false if ref is
// stale or unknown.
func (w *World) Despawn(ref Ref) bool {
	switch ref.Kind {
	case KindShip:
		if w.ship == nil || w.shipID != ref.ID {
			return false
		}
		w.ship = nil
		return true
	case KindUFO:
		if w.ufo == nil || w.ufoID != ref.ID {
			return false
		}
		w.ufo = nil
		return true
	case KindAsteroid:
		return w.asteroids.remove(ref.ID)
	case KindBullet:
		return w.bullets.remove(ref.ID)
	case KindExplosion:
		return w.explosions.remove(ref.ID)
	}
	return false
}

// Colliders appends a snapshot of every collidable entity to buf, grouped
// by kind: ship, asteroids, bullets, UFO.
func (w *World) Colliders(buf []Collider) []Collider {
	if w.ship != nil {
		buf = append(buf, Collider{Ref: Ref{KindShip, w.shipID}, Pos: w.ship.Pos, Radius: w.ship.Radius})
	}
	w.asteroids.each(func(id ID, a *Asteroid) {
		buf = append(buf, Collider{Ref: Ref{KindAsteroid, id}, Pos: a.Pos, Radius: a.Radius})
	})
	w.bullets.each(func(id ID, b *Bullet) {
		buf = append(buf, Collider{Ref: Ref{KindBullet, id}, Pos: b.Pos, Radius: b.Radius, Owner: b.Owner})
	})
	if w.ufo != nil {
		buf = append(buf, Collider{Ref: Ref{KindUFO, w.ufoID}, Pos: w.ufo.Pos, Radius: w.ufo.Radius})
	}
	return buf
}

// AsteroidCount returns the number of live asteroids.
func (w *World) AsteroidCount() int { return w.asteroids.len() }

// BulletCount returns the number of live bullets of both owners.
func (w *World) BulletCount() int { return w.bullets.len() }

// ExplosionCount returns the number of live explosions.
func (w *World) ExplosionCount() int { return w.explosions.len() }

// PlayerBulletCount returns the number of live bullets fired by the ship.
func (w *World) PlayerBulletCount() int {
	n := 0
	w.bullets.each(func(_ ID, b *Bullet) {
		if b.Owner == OwnerShip {
			n++
		}
	})
	return n
}

// ClearBullets removes every bullet.
func (w *World) ClearBullets() {
	w.bullets.clear()
}

// Clear removes every entity, ship and UFO included.
func (w *World) Clear() {
	w.ship = nil
	w.ufo = nil
	w.asteroids.clear()
	w.bullets.clear()
	w.explosions.clear()
}

// Compact reclaims the slots of despawned entities. Call once per tick,
// after every system has run.
func (w *World) Compact() {
	w.asteroids.compact()
	w.bullets.compact()
	w.explosions.compact()
}

// EachAsteroid calls fn for every live asteroid.
func (w *World) EachAsteroid(fn func(ID, *Asteroid)) { w.asteroids.each(fn) }

// EachBullet calls fn for every live bullet.
func (w *World) EachBullet(fn func(ID, *Bullet)) { w.bullets.each(fn) }

// EachExplosion calls fn for every live explosion.
func (w *World) EachExplosion(fn func(ID, *Explosion)) { w.explosions.each(fn) }

// EachBody calls fn for the body of every moving entity.
func (w *World) EachBody(fn func(*Body)) {
	if w.ship != nil {
		fn(&w.ship.Body)
	}
	if w.ufo != nil {
		fn(&w.ufo.Body)
	}
	w.asteroids.each(func(_ ID, a *Asteroid) { fn(&a.Body) })
	w.bullets.each(func(_ ID, b *Bullet) { fn(&b.Body) })
}

// Draw renders every entity, explosions last.
func (w *World) Draw(ctx DrawContext) {
	w.asteroids.each(func(_ ID, a *Asteroid) { a.Draw(ctx) })
	w.bullets.each(func(_ ID, b *Bullet) { b.Draw(ctx) })
	if w.ufo != nil {
		w.ufo.Draw(ctx)
	}
	if w.ship != nil {
		w.ship.Draw(ctx)
	}
	w.explosions.each(func(_ ID, e *Explosion) { e.Draw(ctx) })
}

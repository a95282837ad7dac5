package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
)

// ufoControlSystem makes the saucer wander and shoot at the ship.
func ufoControlSystem(g *Game, dt float64) {
	u := g.world.UFO()
	if u == nil {
		return
	}

	jitter := mgl64.Vec2{
		(g.rng.Float64()*2 - 1) * config.UFOJitter,
		(g.rng.Float64()*2 - 1) * config.UFOJitter,
	}
	u.Vel = u.Vel.Add(jitter)
	if speed := u.Vel.Len(); speed > config.UFOMaxSpeed {
		u.Vel = u.Vel.Mul(config.UFOMaxSpeed / speed)
	}

	u.FireTimer -= dt
	if u.FireTimer > 0 {
		return
	}
	u.FireTimer = config.UFOFireInterval

	ship := g.world.Ship()
	if ship == nil {
		return
	}
	aim := ship.Pos.Sub(u.Pos)
	if aim.Len() == 0 {
		return
	}
	dir := aim.Normalize()
	// Leave from the rim so the shot does not start inside the saucer.
	origin := u.Pos.Add(dir.Mul(u.Radius + config.BulletRadius))
	g.world.AddBullet(object.NewBullet(origin, dir.Mul(config.UFOBulletSpeed), config.BulletRadius, config.UFOBulletLife, object.OwnerUFO))
}

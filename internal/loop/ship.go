package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
)

// shipControlSystem applies turning, thrust and teleport input to the ship.
func shipControlSystem(g *Game, dt float64) {
	s := g.world.Ship()
	if s == nil {
		return
	}

	switch {
	case g.input.Left:
		s.Spin = config.ShipRotateRate
	case g.input.Right:
		s.Spin = -config.ShipRotateRate
	default:
		s.Spin = 0
	}
	s.Spin = mgl64.Clamp(s.Spin, -config.ShipMaxSpin, config.ShipMaxSpin)

	s.Thrust = g.input.Up
	if s.Thrust {
		s.Vel = s.Vel.Add(s.Facing().Mul(config.ShipThrust * dt))
		if speed := s.Vel.Len(); speed > config.ShipMaxSpeed {
			s.Vel = s.Vel.Mul(config.ShipMaxSpeed / speed)
		}
	}

	if g.pressed(keyEnter) {
		s.Pos = g.randomInterior(config.TeleportInset)
	}
}

// shipFireSystem launches a bullet while fire is held, limited by the
// cooldown and the number of live player bullets.
func shipFireSystem(g *Game, dt float64) {
	s := g.world.Ship()
	if s == nil {
		return
	}

	s.Firing = g.input.Space
	s.FireCooldown -= dt
	if !s.Firing || s.FireCooldown > 0 {
		return
	}
	if g.world.PlayerBulletCount() >= config.MaxBullets {
		return
	}

	s.FireCooldown = config.FireInterval.Seconds()
	vel := s.Facing().Mul(config.BulletSpeed).Add(s.Vel)
	g.world.AddBullet(object.NewBullet(s.Nose(), vel, config.BulletRadius, config.BulletLife, object.OwnerShip))
}

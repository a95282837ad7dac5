package loop

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/physics"
)

// randomInterior returns a uniformly random point inside the world.
func (g *Game) randomInterior(inset float64) mgl64.Vec2 {
	return mgl64.Vec2{
		(g.rng.Float64()*2 - 1) * g.half.X() * inset,
		(g.rng.Float64()*2 - 1) * g.half.Y() * inset,
	}
}

// randomEdge returns a random point on the world border.
func (g *Game) randomEdge() mgl64.Vec2 {
	x := (g.rng.Float64()*2 - 1) * g.half.X()
	y := (g.rng.Float64()*2 - 1) * g.half.Y()
	switch g.rng.Intn(4) {
	case 0:
		return mgl64.Vec2{x, g.half.Y()}
	case 1:
		return mgl64.Vec2{x, -g.half.Y()}
	case 2:
		return mgl64.Vec2{-g.half.X(), y}
	default:
		return mgl64.Vec2{g.half.X(), y}
	}
}

// asteroidVelocity picks a random heading. Smaller asteroids are faster.
func (g *Game) asteroidVelocity(scale float64) mgl64.Vec2 {
	angle := g.rng.Float64() * 2 * math.Pi
	speed := config.AsteroidBaseSpeed/scale + (g.rng.Float64()*2-1)*config.AsteroidJitter
	return mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(speed)
}

// spawnWave adds n full-size asteroids at random positions. While a ship
// exists, each asteroid keeps WaveClearance away from it; positions are
// resampled until that holds. NewGame guarantees the world is large
// enough for this to end.
func (g *Game) spawnWave(n int) {
	clearance := config.WaveClearance
	ship := g.world.Ship()

	for i := 0; i < n; i++ {
		pos := g.randomInterior(1)
		for ship != nil && physics.Distance(pos, ship.Pos) < clearance {
			pos = g.randomInterior(1)
		}
		vel := g.asteroidVelocity(config.InitialScale)
		g.world.AddAsteroid(object.NewAsteroid(pos, vel, config.InitialScale, g.rng))
	}
}

// childScale is the scale of the fragments an asteroid breaks into.
// ok is false when the fragments would be too small to exist.
func childScale(parent float64) (scale float64, ok bool) {
	scale = parent / 2
	return scale, scale > config.SplitThreshold
}

// spawnFragment adds one fragment of a destroyed asteroid at origin.
func (g *Game) spawnFragment(origin mgl64.Vec2, parentScale float64) {
	scale, ok := childScale(parentScale)
	if !ok {
		return
	}
	vel := g.asteroidVelocity(scale)
	g.world.AddAsteroid(object.NewAsteroid(origin, vel, scale, g.rng))
}

// spawnShip places a ship in the centre unless one is alive.
func (g *Game) spawnShip() {
	g.world.SpawnShip(object.NewShip(mgl64.Vec2{}, config.ShipRadius))
}

// spawnUFO brings in a saucer on the world edge. It is a no-op while one is alive.
func (g *Game) spawnUFO() bool {
	u := object.NewUFO(g.randomEdge(), config.UFORadius, config.UFOFireDelay)
	_, ok := g.world.SpawnUFO(u)
	if ok {
		g.log.Debug("ufo spawned")
	}
	return ok
}

func (g *Game) removeUFO() {
	if ref, ok := g.world.UFORef(); ok {
		g.world.Despawn(ref)
	}
}

func ufoSpawnSystem(g *Game, dt float64) {
	if g.ufoTimer.Tick(dt) && g.world.UFO() == nil {
		g.spawnUFO()
	}
}

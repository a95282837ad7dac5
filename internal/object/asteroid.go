package object

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Asteroid geometry. The collision radius sits between the inner and
// outer bound of the irregular outline.
const (
	AsteroidRadiusPerScale = 65.0
	asteroidInnerPerScale  = 50.0
	asteroidOuterPerScale  = 75.0
	asteroidVertices       = 25
)

// RadiusForScale returns the collision radius of an asteroid of the given scale.
func RadiusForScale(scale float64) float64 {
	return AsteroidRadiusPerScale * scale
}

// Asteroid is a destructible space rock. Shooting one splits it into two
// children of half the scale.
type Asteroid struct {
	Body
	Scale    float64
	Angle    float64
	Spin     float64
	Vertices []float64 // distance of each outline vertex from the centre
}

// NewAsteroid creates an asteroid with a random outline and spin.
func NewAsteroid(pos, vel mgl64.Vec2, scale float64, rng *rand.Rand) *Asteroid {
	vertices := make([]float64, asteroidVertices)
	for i := range vertices {
		vertices[i] = scale * (asteroidInnerPerScale + rng.Float64()*(asteroidOuterPerScale-asteroidInnerPerScale))
	}
	return &Asteroid{
		Body:     Body{Pos: pos, Vel: vel, Radius: RadiusForScale(scale)},
		Scale:    scale,
		Angle:    rng.Float64() * 2 * math.Pi,
		Spin:     (rng.Float64() - 0.5) * 2,
		Vertices: vertices,
	}
}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) {
	n := len(a.Vertices)
	if n < 3 {
		ctx.Canvas.DrawCircle(ctx.ToCanvas(a.Pos), a.Radius)
		return
	}

	points := ctx.Canvas.BorrowPoints(n)
	for i, dist := range a.Vertices {
		angle := a.Angle + float64(i)*2*math.Pi/float64(n)
		v := mgl64.Vec2{math.Cos(angle) * dist, math.Sin(angle) * dist}
		points[i] = ctx.ToCanvas(a.Pos.Add(v))
	}
	ctx.Canvas.DrawPolygon(points, false)
}

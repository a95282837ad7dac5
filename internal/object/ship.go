package object

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Body
	Angle        float64 // radians, 0 points along +X
	Spin         float64 // rotation rate in radians per second
	Thrust       bool
	Firing       bool
	FireCooldown float64 // seconds until the next shot is allowed
}

// NewShip returns a ship at pos pointing up.
func NewShip(pos mgl64.Vec2, radius float64) *Ship {
	return &Ship{
		Body:  Body{Pos: pos, Radius: radius},
		Angle: math.Pi / 2,
	}
}

// Facing is the unit vector the nose points along.
func (s *Ship) Facing() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(s.Angle), math.Sin(s.Angle)}
}

// Nose is the point bullets leave from.
func (s *Ship) Nose() mgl64.Vec2 {
	return s.Pos.Add(s.Facing().Mul(s.Radius))
}

// Draw renders the ship as a triangle, with a flame while thrusting.
func (s *Ship) Draw(ctx DrawContext) {
	r := s.Radius
	hull := [3]mgl64.Vec2{
		{r, 0},
		{-r * 0.7, r * 0.6},
		{-r * 0.7, -r * 0.6},
	}
	ctx.Canvas.DrawPolygon(ctx.outline(s.Pos, s.Angle, hull[:]), false)

	if s.Thrust {
		flame := [3]mgl64.Vec2{
			{-r * 0.7, r * 0.3},
			{-r * 1.3, 0},
			{-r * 0.7, -r * 0.3},
		}
		ctx.Canvas.DrawPolygon(ctx.outline(s.Pos, s.Angle, flame[:]), false)
	}
}

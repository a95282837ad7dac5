package object

import "github.com/go-gl/mathgl/mgl64"

// UFO is the enemy saucer. It drifts randomly and shoots at the ship.
type UFO struct {
	Body
	FireTimer float64 // seconds until the next shot
}

// NewUFO creates a saucer at rest at pos.
func NewUFO(pos mgl64.Vec2, radius, fireDelay float64) *UFO {
	return &UFO{
		Body:      Body{Pos: pos, Radius: radius},
		FireTimer: fireDelay,
	}
}

// Draw renders the classic saucer silhouette.
func (u *UFO) Draw(ctx DrawContext) {
	w := u.Radius
	h := u.Radius * 0.85 / 2
	hull := [6]mgl64.Vec2{
		{-w, 0},
		{-w / 2, h},
		{w / 2, h},
		{w, 0},
		{w / 2, -h},
		{-w / 2, -h},
	}
	ctx.Canvas.DrawPolygon(ctx.outline(u.Pos, 0, hull[:]), false)
	ctx.Canvas.DrawLine(ctx.ToCanvas(u.Pos.Add(mgl64.Vec2{-w, 0})), ctx.ToCanvas(u.Pos.Add(mgl64.Vec2{w, 0})))
}

package object

import "github.com/go-gl/mathgl/mgl64"

// Bullet is a projectile fired by the ship or the UFO.
type Bullet struct {
	Body
	Owner Owner
	Life  float64 // seconds remaining
}

// NewBullet creates a bullet leaving from pos.
func NewBullet(pos, vel mgl64.Vec2, radius, life float64, owner Owner) *Bullet {
	return &Bullet{
		Body:  Body{Pos: pos, Vel: vel, Radius: radius},
		Owner: owner,
		Life:  life,
	}
}

// Expired reports whether the bullet has outlived its lifetime.
func (b *Bullet) Expired() bool {
	return b.Life <= 0
}

// Draw renders the bullet as a small dot.
func (b *Bullet) Draw(ctx DrawContext) {
	p := ctx.ToCanvas(b.Pos)
	ctx.Canvas.SetFloat(p.X, p.Y)
	ctx.Canvas.DrawCircle(p, b.Radius)
}

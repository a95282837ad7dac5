package object

import "github.com/go-gl/mathgl/mgl64"

// Explosion is an expanding ring that fades out. It takes part in no collisions.
type Explosion struct {
	Pos    mgl64.Vec2
	Radius float64
	Width  float64
	Alpha  float64
}

// ExplosionStyle holds the animation parameters of an explosion ring.
type ExplosionStyle struct {
	Radius  float64 // initial radius
	Width   float64 // initial stroke width
	Grow    float64 // radius multiplier per step
	Thin    float64 // stroke width lost per step
	Fade    float64 // alpha lost per step
	MaxWide float64 // stroke width clamp
}

// NewExplosion starts a fully opaque ring at pos.
func NewExplosion(pos mgl64.Vec2, style ExplosionStyle) *Explosion {
	return &Explosion{Pos: pos, Radius: style.Radius, Width: style.Width, Alpha: 1}
}

// Advance runs one animation step.
func (e *Explosion) Advance(style ExplosionStyle) {
	e.Radius *= style.Grow
	e.Width = clamp(e.Width-style.Thin, 0, style.MaxWide)
	e.Alpha = clamp(e.Alpha-style.Fade, 0, 1)
}

// Done reports whether the ring has faded out completely.
func (e *Explosion) Done() bool {
	return e.Alpha <= 0
}

// Draw renders the ring. Thicker strokes draw extra concentric circles and
// the ring thins to dots while it fades.
func (e *Explosion) Draw(ctx DrawContext) {
	if e.Done() {
		return
	}
	c := ctx.ToCanvas(e.Pos)
	ctx.Canvas.DrawCircle(c, e.Radius)
	for w := 2.0; w <= e.Width; w += 2 {
		ctx.Canvas.DrawCircle(c, e.Radius+w)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

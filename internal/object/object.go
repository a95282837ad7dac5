// Package object defines the game entities and the World that stores them.
package object

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/draw"
)

// ID identifies an entity inside its arena. IDs are never reused within a World.
type ID uint32

// Kind tags the variant an entity belongs to.
type Kind uint8

const (
	KindShip Kind = iota + 1
	KindAsteroid
	KindBullet
	KindUFO
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindUFO:
		return "ufo"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Ref is a typed handle to an entity. A Ref may outlive its entity;
// use World.Alive before trusting it.
type Ref struct {
	Kind Kind
	ID   ID
}

// Body is the shared physical state of every collidable entity.
type Body struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
}

// Owner says who fired a bullet.
type Owner uint8

const (
	OwnerShip Owner = iota
	OwnerUFO
)

// Collider is a snapshot of one collidable entity, taken for the collision sweep.
type Collider struct {
	Ref    Ref
	Pos    mgl64.Vec2
	Radius float64
	Owner  Owner // bullets only
}

// DrawContext maps world coordinates onto the canvas.
// The world origin is the centre of the screen and Y grows upwards.
type DrawContext struct {
	Canvas *draw.Canvas
	HalfW  float64
	HalfH  float64
}

// ToCanvas converts a world position to canvas logical coordinates.
func (ctx DrawContext) ToCanvas(p mgl64.Vec2) draw.Point {
	return draw.Point{X: p.X() + ctx.HalfW, Y: ctx.HalfH - p.Y()}
}

// outline maps a closed polygon given in local coordinates, rotated by
// angle, to canvas points. The slice is borrowed from the canvas.
func (ctx DrawContext) outline(center mgl64.Vec2, angle float64, local []mgl64.Vec2) []draw.Point {
	points := ctx.Canvas.BorrowPoints(len(local))
	rot := mgl64.Rotate2D(angle)
	for i, v := range local {
		points[i] = ctx.ToCanvas(center.Add(rot.Mul2x1(v)))
	}
	return points
}

// Package physics provides collision detection and distance utilities.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b mgl64.Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// CirclesOverlap reports whether two circles touch or overlap.
// Touching (distance == r1 + r2) counts as a collision.
func CirclesOverlap(p1 mgl64.Vec2, r1 float64, p2 mgl64.Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(p1, p2) <= minDist*minDist
}

// Wrap teleports a position that left the centered world [-half, half]
// to the opposite edge. Positions inside the bounds are returned unchanged.
func Wrap(p, half mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{wrapAxis(p[0], half[0]), wrapAxis(p[1], half[1])}
}

func wrapAxis(v, half float64) float64 {
	switch {
	case v > half:
		return -half
	case v < -half:
		return half
	default:
		return v
	}
}

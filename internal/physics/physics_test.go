package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDistance(t *testing.T) {
	got := Distance(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4})
	if got != 5 {
		t.Errorf("Distance = %g, want 5", got)
	}
	if DistanceSquared(mgl64.Vec2{1, 1}, mgl64.Vec2{4, 5}) != 25 {
		t.Error("DistanceSquared mismatch")
	}
}

func TestCirclesOverlapBoundary(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 mgl64.Vec2
		r1, r2 float64
		want   bool
	}{
		{"touching counts", mgl64.Vec2{0, 0}, mgl64.Vec2{30, 40}, 20, 30, true},
		{"overlapping", mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 6, 6, true},
		{"just apart", mgl64.Vec2{0, 0}, mgl64.Vec2{12.0001, 0}, 6, 6, false},
		{"same point", mgl64.Vec2{5, 5}, mgl64.Vec2{5, 5}, 1, 1, true},
		{"far", mgl64.Vec2{-100, 0}, mgl64.Vec2{100, 0}, 65, 30, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.p1, tc.r1, tc.p2, tc.r2); got != tc.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tc.want)
			}
			// Symmetric
			if got := CirclesOverlap(tc.p2, tc.r2, tc.p1, tc.r1); got != tc.want {
				t.Errorf("CirclesOverlap (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWrapTeleports(t *testing.T) {
	half := mgl64.Vec2{640, 360}
	eps := 0.001

	tests := []struct {
		name string
		in   mgl64.Vec2
		want mgl64.Vec2
	}{
		{"inside", mgl64.Vec2{100, -50}, mgl64.Vec2{100, -50}},
		{"on edge stays", mgl64.Vec2{640, 360}, mgl64.Vec2{640, 360}},
		{"past right", mgl64.Vec2{640 + eps, 0}, mgl64.Vec2{-640, 0}},
		{"past left", mgl64.Vec2{-640 - eps, 0}, mgl64.Vec2{640, 0}},
		{"past top", mgl64.Vec2{0, 360 + eps}, mgl64.Vec2{0, -360}},
		{"past bottom", mgl64.Vec2{0, -1000}, mgl64.Vec2{0, 360}},
		{"both axes", mgl64.Vec2{700, -400}, mgl64.Vec2{-640, 360}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, half)
			if got != tc.want {
				t.Errorf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// Package draw renders vector shapes onto a half-block terminal canvas.
package draw

// Point is a 2D coordinate in canvas logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

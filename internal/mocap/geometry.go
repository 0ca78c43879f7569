package mocap

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Hypot(dx, dy)
}

// Sub returns the vector from a to b.
func Sub(a, b Point) (dx, dy float64) {
	dx = b.X - a.X
	dy = b.Y - a.Y
	return
}

// Unit returns the unit vector from a to b and reports whether it is
// defined. Coincident points have no direction.
func Unit(a, b Point) (ux, uy float64, ok bool) {
	dx, dy := Sub(a, b)
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, false
	}
	return dx / d, dy / d, true
}

package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the Euclidean distance between (ax, ay) and (bx, by)
func Distance(ax, ay, bx, by float64) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: bx, Y: by}, r2.Vec{X: ax, Y: ay}))
}

// RotateVector rotates v by angle radians about the origin
func RotateVector(v r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(v, angle, r2.Vec{})
}

// Bounds is the drawable surface size
type Bounds struct {
	Width, Height float64
}

// Pointer is the last known cursor position; Set is false until the first move
type Pointer struct {
	X, Y float64
	Set  bool
}

// DistanceTo treats an unset pointer as infinitely far away
func (p Pointer) DistanceTo(x, y float64) float64 {
	if !p.Set {
		return math.Inf(1)
	}
	return Distance(p.X, p.Y, x, y)
}

// Near reports whether the pointer lies in the box around (x, y) that drives
// radius growth. The lower y edge is inclusive, every other edge exclusive.
func (p Pointer) Near(x, y, half float64) bool {
	if !p.Set {
		return false
	}
	dx, dy := p.X-x, p.Y-y
	return dx < half && dx > -half && dy < half && dy >= -half
}

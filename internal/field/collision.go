package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ResolveCollision applies a 1D elastic collision along the line joining the
// centres of a and b, writing the new velocities back. Positions are left alone.
// Pairs that are already separating are ignored so a lingering overlap cannot
// keep pumping energy into them.
func ResolveCollision(a, b *Particle) {
	dv := r2.Sub(a.Vel, b.Vel)
	d := r2.Sub(b.Pos, a.Pos)

	if r2.Dot(dv, d) < 0 {
		return
	}

	m1, m2 := a.Mass, b.Mass
	total := m1 + m2
	if total == 0 {
		return
	}

	// Contact axis becomes the x axis
	angle := -math.Atan2(d.Y, d.X)
	u1 := RotateVector(a.Vel, angle)
	u2 := RotateVector(b.Vel, angle)

	v1 := r2.Vec{X: u1.X*(m1-m2)/total + u2.X*2*m2/total, Y: u1.Y}
	v2 := r2.Vec{X: u2.X*(m2-m1)/total + u1.X*2*m1/total, Y: u2.Y}

	a.Vel = RotateVector(v1, -angle)
	b.Vel = RotateVector(v2, -angle)
}

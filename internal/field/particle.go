package field

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle behaviour constants
const (
	MaxRadius = 8.0 // Growth stops once radius reaches this

	StartOpacity = 0.2
	StartSpeed   = 2.5 // Velocity components start in [0, StartSpeed)

	FadeInRange = 100.0 // Pointer distance that lights a particle up
	FadeIn      = 0.08
	FadeOut     = 0.02

	GrowBox = 50.0 // Half-size of the pointer box that inflates a particle
	Grow    = 4.0
	Shrink  = 1.0
)

// Particle is a circular body. Opacity and Radius ease with pointer proximity.
type Particle struct {
	Pos, Vel  r2.Vec
	Radius    float64
	MinRadius float64
	MaxRadius float64
	Mass      float64
	Opacity   float64
	Color     color.RGBA
}

// NewParticle creates a particle at rest size radius with a random drift
func NewParticle(x, y, radius float64, c color.RGBA, rng *rand.Rand) Particle {
	return Particle{
		Pos:       r2.Vec{X: x, Y: y},
		Vel:       r2.Vec{X: rng.Float64() * StartSpeed, Y: rng.Float64() * StartSpeed},
		Radius:    radius,
		MinRadius: radius,
		MaxRadius: MaxRadius,
		Mass:      1,
		Opacity:   StartOpacity,
		Color:     c,
	}
}

// Update advances all[i] by one tick and draws it.
// Collisions are tested against every other particle before moving, then the
// edges reflect, the position integrates, and opacity and radius ease toward
// the pointer.
func Update(i int, all []Particle, ptr Pointer, b Bounds, c Canvas) {
	p := &all[i]

	for j := range all {
		if j == i {
			continue
		}
		o := &all[j]
		if Distance(p.Pos.X, p.Pos.Y, o.Pos.X, o.Pos.Y)-p.Radius*2 < 0 {
			ResolveCollision(p, o)
		}
	}

	if p.Pos.X-p.Radius <= 0 || p.Pos.X+p.Radius >= b.Width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y-p.Radius <= 0 || p.Pos.Y+p.Radius >= b.Height {
		p.Vel.Y = -p.Vel.Y
	}

	p.Pos = r2.Add(p.Pos, p.Vel)

	p.fade(ptr)
	p.inflate(ptr)

	c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color, p.Opacity)
}

// fade brightens a particle near the pointer and dims it otherwise.
// Opacity snaps to 1 instead of creeping toward it.
func (p *Particle) fade(ptr Pointer) {
	if ptr.DistanceTo(p.Pos.X, p.Pos.Y) < FadeInRange {
		p.Opacity += FadeIn
		if p.Opacity >= 1 {
			p.Opacity = 1
		}
		return
	}
	if p.Opacity > 0 {
		p.Opacity -= FadeOut
		if p.Opacity < 0 {
			p.Opacity = 0
		}
	}
}

// inflate grows a particle by whole steps while the pointer hovers; a single
// step may carry it past MaxRadius.
func (p *Particle) inflate(ptr Pointer) {
	if ptr.Near(p.Pos.X, p.Pos.Y, GrowBox) {
		if p.Radius < p.MaxRadius {
			p.Radius += Grow
		}
		return
	}
	if p.Radius > p.MinRadius {
		p.Radius -= Shrink
		if p.Radius < p.MinRadius {
			p.Radius = p.MinRadius
		}
	}
}

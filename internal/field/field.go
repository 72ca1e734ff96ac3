package field

import (
	"log"
	"math/rand"
)

// Field owns the particle collection and advances it one frame at a time.
// It is not safe for concurrent use; surfaces drive it from one goroutine.
type Field struct {
	placement Placement
	rng       *rand.Rand

	particles []Particle
	palette   Palette
	bounds    Bounds
	relaxed   int
	frame     int
}

// New creates a field with a random palette. Call Rebuild before the first Step.
func New(p Placement, rng *rand.Rand) *Field {
	return &Field{
		placement: p,
		rng:       rng,
		palette:   PickPalette(rng),
	}
}

// Rebuild discards every particle and places a fresh set inside b. Bounds
// too small for one particle leave the field empty until the next Rebuild.
func (f *Field) Rebuild(b Bounds) {
	f.bounds = b
	f.particles, f.relaxed = Initialize(f.placement, b, f.palette, f.rng)
	if !f.placement.Fits(b) {
		log.Printf("field: %.0fx%.0f is too small for radius %g, field left empty", b.Width, b.Height, f.placement.Radius)
	}
	if f.relaxed > 0 {
		log.Printf("field: %d of %d particles placed with overlap in %.0fx%.0f", f.relaxed, len(f.particles), b.Width, b.Height)
	}
}

// Reseed picks a new palette; it takes effect on the next Rebuild
func (f *Field) Reseed() {
	f.palette = PickPalette(f.rng)
}

// SetPlacement replaces the scene parameters used by later rebuilds
func (f *Field) SetPlacement(p Placement) {
	f.placement = p
}

// Step clears c and updates every particle in index order against the live
// pointer and bounds.
func (f *Field) Step(ptr Pointer, b Bounds, c Canvas) {
	c.Clear(b)
	for i := range f.particles {
		Update(i, f.particles, ptr, b, c)
	}
	f.frame++
}

func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Palette() Palette { return f.palette }
func (f *Field) Bounds() Bounds { return f.bounds }
func (f *Field) Placement() Placement { return f.placement }

// Relaxed is the number of overlapping placements in the last rebuild
func (f *Field) Relaxed() int { return f.relaxed }

// Frame counts steps since creation
func (f *Field) Frame() int { return f.frame }

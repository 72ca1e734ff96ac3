package field

import (
	"math"
	"math/rand"
)

// RelaxedAttempts is the per-particle allowance once a rebuild has spent
// its MaxAttempts budget
const RelaxedAttempts = 8

// Placement describes a scene to build
type Placement struct {
	Count     int
	Radius    float64
	MaxRadius float64

	// MaxAttempts caps resamples for a whole rebuild; 0 retries forever
	MaxAttempts int
}

// Fits reports whether a disc of Radius can be placed inside b at all
func (p Placement) Fits(b Bounds) bool {
	return b.Width >= 2*p.Radius && b.Height >= 2*p.Radius
}

// Initialize places p.Count particles inside b so that no two centres are
// closer than 2*Radius. A rejected candidate is resampled and rechecked
// against every particle already placed.
//
// MaxAttempts resamples are shared by every particle of the rebuild. A
// particle may use whatever is left of that budget, or RelaxedAttempts once
// it runs low; when those fail the candidate with the most clearance seen is
// accepted instead. The number of such relaxed placements is returned
// alongside the particles.
//
// Bounds too small to hold a single disc yield no particles.
func Initialize(p Placement, b Bounds, palette Palette, rng *rand.Rand) ([]Particle, int) {
	if !p.Fits(b) {
		return nil, 0
	}

	particles := make([]Particle, 0, p.Count)
	relaxed := 0
	minDist := p.Radius * 2
	budget := p.MaxAttempts

	for i := 0; i < p.Count; i++ {
		x, y := samplePoint(rng, p.Radius, b)
		limit := max(budget, RelaxedAttempts)

		bestX, bestY := x, y
		best := clearance(particles, x, y)
		for attempts := 0; best < minDist; {
			if p.MaxAttempts > 0 && attempts >= limit {
				x, y = bestX, bestY
				relaxed++
				break
			}
			x, y = samplePoint(rng, p.Radius, b)
			attempts++
			if budget > 0 {
				budget--
			}
			if d := clearance(particles, x, y); d > best {
				best, bestX, bestY = d, x, y
			}
			if best >= minDist {
				x, y = bestX, bestY
			}
		}

		pt := NewParticle(x, y, p.Radius, PickColor(rng, palette), rng)
		if p.MaxRadius > 0 {
			pt.MaxRadius = p.MaxRadius
		}
		particles = append(particles, pt)
	}

	return particles, relaxed
}

// samplePoint draws whole-unit coordinates from [r, w-r] x [r, h-r]
func samplePoint(rng *rand.Rand, r float64, b Bounds) (float64, float64) {
	return randomInRange(rng, r, b.Width-r), randomInRange(rng, r, b.Height-r)
}

func randomInRange(rng *rand.Rand, min, max float64) float64 {
	return math.Floor(rng.Float64()*(max-min+1) + min)
}

// clearance is the distance from (x, y) to the nearest placed centre
func clearance(placed []Particle, x, y float64) float64 {
	nearest := math.Inf(1)
	for i := range placed {
		if d := Distance(x, y, placed[i].Pos.X, placed[i].Pos.Y); d < nearest {
			nearest = d
		}
	}
	return nearest
}

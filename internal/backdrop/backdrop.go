// Package backdrop produces a slowly drifting noise field drawn behind the particles.
package backdrop

import (
	"github.com/aquilax/go-perlin"
)

// Noise parameters
const (
	Alpha   = 2.0
	Beta    = 2.0
	Octaves = 3

	Scale = 0.004 // Surface units to noise space
	Drift = 0.01  // Noise-space z advance per frame

	Cell = 20.0 // Surface units per backdrop tile
)

// Backdrop samples perlin noise over the surface
type Backdrop struct {
	noise *perlin.Perlin
}

func New(seed int64) *Backdrop {
	return &Backdrop{noise: perlin.NewPerlin(Alpha, Beta, Octaves, seed)}
}

// Intensity returns a value in [0,1] for surface point (x, y) at frame t
func (b *Backdrop) Intensity(x, y, t float64) float64 {
	v := 0.5 + 0.5*b.noise.Noise3D(x*Scale, y*Scale, t*Drift)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Tile is one square of the backdrop grid
type Tile struct {
	X, Y, Size float64
	Intensity  float64
}

// Tiles covers a width x height surface with Cell sized tiles at frame t
func (b *Backdrop) Tiles(width, height, t float64) []Tile {
	var tiles []Tile
	for x := 0.0; x < width; x += Cell {
		for y := 0.0; y < height; y += Cell {
			tiles = append(tiles, Tile{
				X: x, Y: y, Size: Cell,
				Intensity: b.Intensity(x+Cell/2, y+Cell/2, t),
			})
		}
	}
	return tiles
}

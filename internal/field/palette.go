package field

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of fills a scene draws its particle colors from
type Palette []color.RGBA

// Palettes holds every built-in palette; one is chosen per scene build.
var Palettes = []Palette{
	mustPalette("#2C3E50", "#E74C3C", "#ECF0F1", "#3498DB", "#2980B9"),
	mustPalette("#C09CD9", "#7D60A6", "#353FF2", "#A69C0F", "#D9CC1E"),
	mustPalette("#4DBBBF", "#337D80", "#66FAFF", "#1A3E40", "#5CE1E6"),
	mustPalette("#F61F38", "#E2001A", "#AF0014", "#16AE95", "#00957C"),
	mustPalette("#7C428C", "#7833A6", "#F2A679", "#F28972", "#D97171"),
	mustPalette("#D92378", "#0B508C", "#5ABFBF", "#F2E527", "#F23535"),
}

// ParseHex converts "#RRGGBB" into an opaque RGBA
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustPalette(hex ...string) Palette {
	p := make(Palette, len(hex))
	for i, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		p[i] = c
	}
	return p
}

// PickPalette chooses one of Palettes uniformly
func PickPalette(rng *rand.Rand) Palette {
	return Palettes[rng.Intn(len(Palettes))]
}

// PickColor chooses a fill from p uniformly
func PickColor(rng *rand.Rand, p Palette) color.RGBA {
	return p[rng.Intn(len(p))]
}

// Package terminal draws the particle field in a terminal with tcell.
//
// The field works in surface units; each terminal cell covers a
// CellWidth x CellHeight block of them, so a default 80x24 terminal is a
// 640x384 surface.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field/internal/field"
)

// Glyphs by size
const (
	smallGlyph = '•'
	largeGlyph = '●'
)

// Surface is a field.Canvas backed by a tcell screen
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	background   colorful.Color
	largeRadius  float64
}

// NewSurface maps cellW x cellH surface units onto each cell of screen.
// Circles within one unit of maxRadius get the large glyph.
func NewSurface(screen tcell.Screen, cellW, cellH int, maxRadius float64) *Surface {
	return &Surface{
		screen:      screen,
		cellW:       float64(cellW),
		cellH:       float64(cellH),
		background:  colorful.Color{},
		largeRadius: maxRadius - 1,
	}
}

// Bounds is the live surface size in field units
func (s *Surface) Bounds() field.Bounds {
	w, h := s.screen.Size()
	return field.Bounds{Width: float64(w) * s.cellW, Height: float64(h) * s.cellH}
}

// ToSurface returns the centre of cell (col, row) in field units
func (s *Surface) ToSurface(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// ToCell returns the cell containing field point (x, y)
func (s *Surface) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) Clear(field.Bounds) {
	s.screen.Clear()
}

// FillCircle paints the cell under the centre; later circles overwrite earlier ones
func (s *Surface) FillCircle(x, y, radius float64, fill color.RGBA, alpha float64) {
	col, row := s.ToCell(x, y)
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}

	glyph := smallGlyph
	if radius >= s.largeRadius {
		glyph = largeGlyph
	}
	style := tcell.StyleDefault.Foreground(s.shade(fill, alpha))
	s.screen.SetContent(col, row, glyph, nil, style)
}

// shade blends fill over the background by alpha; terminals have no alpha channel
func (s *Surface) shade(fill color.RGBA, alpha float64) tcell.Color {
	c := colorful.Color{
		R: float64(fill.R) / 255,
		G: float64(fill.G) / 255,
		B: float64(fill.B) / 255,
	}
	r, g, b := s.background.BlendRgb(c, alpha).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package field

import "image/color"

// Canvas is the drawing side of a surface.
type Canvas interface {
	Clear(b Bounds)
	FillCircle(x, y, radius float64, fill color.RGBA, alpha float64)
}

// Circle is one recorded FillCircle call
type Circle struct {
	X, Y, Radius float64
	Color        color.RGBA
	Alpha        float64
}

// DrawList records a frame so it can be drawn later, outside the tick.
type DrawList struct {
	Bounds  Bounds
	Circles []Circle
	Clears  int
}

func (d *DrawList) Clear(b Bounds) {
	d.Bounds = b
	d.Circles = d.Circles[:0]
	d.Clears++
}

func (d *DrawList) FillCircle(x, y, radius float64, fill color.RGBA, alpha float64) {
	d.Circles = append(d.Circles, Circle{X: x, Y: y, Radius: radius, Color: fill, Alpha: alpha})
}

// Replay issues the recorded frame against c
func (d *DrawList) Replay(c Canvas) {
	c.Clear(d.Bounds)
	for _, ci := range d.Circles {
		c.FillCircle(ci.X, ci.Y, ci.Radius, ci.Color, ci.Alpha)
	}
}

package tui

import (
	"github.com/dm/weatherface/internal/face"
)

// screen holds the watch's surfaces: a text layer per surface and a one-row
// cell buffer for the battery gauge.
type screen struct {
	text  map[face.SurfaceID]string
	dirty map[face.SurfaceID]bool
	gauge *cellCanvas
}

var _ face.Display = (*screen)(nil)

func newScreen() *screen {
	return &screen{
		text:  make(map[face.SurfaceID]string),
		dirty: make(map[face.SurfaceID]bool),
		gauge: newCellCanvas(0, 0),
	}
}

// setGaugeWidth resizes the gauge surface and schedules a redraw.
func (s *screen) setGaugeWidth(w int) {
	s.gauge = newCellCanvas(w, 1)
	s.dirty[face.SurfaceBattery] = true
}

// SetText replaces a surface's text. Setting text implies a redraw.
func (s *screen) SetText(id face.SurfaceID, text string) {
	s.text[id] = text
	s.dirty[id] = true
}

// MarkDirty schedules a surface for redraw.
func (s *screen) MarkDirty(id face.SurfaceID) {
	s.dirty[id] = true
}

// Text returns the current string on a surface.
func (s *screen) Text(id face.SurfaceID) string {
	return s.text[id]
}

// redraw runs the gauge's draw routine if it was marked dirty and clears all
// dirty flags. It reports whether anything changed.
func (s *screen) redraw(draw func(face.Canvas)) bool {
	if len(s.dirty) == 0 {
		return false
	}
	if s.dirty[face.SurfaceBattery] && draw != nil {
		draw(s.gauge)
	}
	clear(s.dirty)
	return true
}

// cellCanvas is a grid of two-tone cells. Fills are clipped to the grid.
type cellCanvas struct {
	w, h  int
	cells []face.Color
}

var _ face.Canvas = (*cellCanvas)(nil)

func newCellCanvas(w, h int) *cellCanvas {
	w, h = max(w, 0), max(h, 0)
	return &cellCanvas{w: w, h: h, cells: make([]face.Color, w*h)}
}

func (c *cellCanvas) Bounds() face.Rect {
	return face.Rect{W: c.w, H: c.h}
}

func (c *cellCanvas) FillRect(r face.Rect, color face.Color) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, c.w), min(r.Y+r.H, c.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.cells[y*c.w+x] = color
		}
	}
}

// At returns the color of one cell; out-of-range cells read as black.
func (c *cellCanvas) At(x, y int) face.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return face.ColorBlack
	}
	return c.cells[y*c.w+x]
}

// filled counts white cells in row y.
func (c *cellCanvas) filled(y int) int {
	n := 0
	for x := 0; x < c.w; x++ {
		if c.At(x, y) == face.ColorWhite {
			n++
		}
	}
	return n
}

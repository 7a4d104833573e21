package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dm/weatherface/internal/face"
)

func TestCellCanvas_FillClipped(t *testing.T) {
	c := newCellCanvas(5, 2)
	c.FillRect(face.Rect{X: -2, Y: 0, W: 4, H: 10}, face.ColorWhite)

	assert.Equal(t, face.Rect{W: 5, H: 2}, c.Bounds())
	assert.Equal(t, 2, c.filled(0))
	assert.Equal(t, 2, c.filled(1))
	assert.Equal(t, face.ColorBlack, c.At(2, 0))
	assert.Equal(t, face.ColorBlack, c.At(99, 99))
}

func TestCellCanvas_ZeroSize(t *testing.T) {
	c := newCellCanvas(-1, 0)
	c.FillRect(face.Rect{W: 3, H: 3}, face.ColorWhite)
	assert.Equal(t, 0, c.filled(0))
}

func TestScreen_RedrawOnlyWhenDirty(t *testing.T) {
	s := newScreen()
	s.setGaugeWidth(10)
	s.redraw(nil)
	calls := 0
	draw := func(c face.Canvas) {
		calls++
		c.FillRect(face.Rect{W: 4, H: 1}, face.ColorWhite)
	}

	assert.False(t, s.redraw(draw))

	s.SetText(face.SurfaceHour, "2")
	assert.True(t, s.redraw(draw))
	assert.Equal(t, 0, calls, "text change must not redraw the gauge")

	s.MarkDirty(face.SurfaceBattery)
	assert.True(t, s.redraw(draw))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, s.gauge.filled(0))
	assert.Equal(t, "2", s.Text(face.SurfaceHour))
}

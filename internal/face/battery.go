package face

import (
	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// OnBatteryChange records the new charge level and asks the host to redraw
// the gauge. The charging flags are not shown.
func (a *App) OnBatteryChange(state model.BatteryState) {
	state = state.Clamped()
	a.batteryLevel = state.ChargePercent
	a.display.MarkDirty(SurfaceBattery)
	a.log.Debug("battery changed",
		logging.KeyPercent, state.ChargePercent,
		"charging", state.IsCharging)
}

// BatteryLevel returns the last recorded charge percentage.
func (a *App) BatteryLevel() int { return a.batteryLevel }

// BarWidth returns the filled width of a gauge maxWidth wide at percent
// charge: floor(percent/100 * maxWidth), with percent clamped to [0, 100].
func BarWidth(percent, maxWidth int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if maxWidth <= 0 {
		return 0
	}
	return percent * maxWidth / 100
}

// DrawBattery is the battery surface's draw routine: a black background
// across the whole surface and a white bar proportional to the charge.
func (a *App) DrawBattery(c Canvas) {
	bounds := c.Bounds()
	maxWidth := a.cfg.BatteryBarWidth
	if bounds.W < maxWidth {
		maxWidth = bounds.W
	}
	c.FillRect(Rect{X: 0, Y: 0, W: bounds.W, H: bounds.H}, ColorBlack)
	c.FillRect(Rect{X: 0, Y: 0, W: BarWidth(a.batteryLevel, maxWidth), H: bounds.H}, ColorWhite)
}

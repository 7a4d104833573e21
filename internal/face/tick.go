package face

import (
	"time"

	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// OnTick dispatches a timer tick. The checks are independent, so one tick
// can update the time, pulse, and request weather together.
func (a *App) OnTick(now time.Time, changed model.TimeUnits) {
	a.log.Debug("tick", logging.KeyUnits, changed.String())

	if changed.Has(model.MinuteUnit) {
		a.UpdateTime(now)
	}
	if changed.Has(model.DayUnit) {
		a.UpdateDate(now)
	}
	if changed.Has(model.HourUnit) && a.cfg.VibrateEveryHour {
		a.vibes.ShortPulse()
	}
	if a.WeatherDue(now) {
		a.RequestWeather()
	}
}

// WeatherDue reports whether now falls on a weather request boundary.
func (a *App) WeatherDue(now time.Time) bool {
	return now.Minute()%a.cfg.WeatherInterval == 0
}

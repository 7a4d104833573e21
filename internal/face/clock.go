package face

import (
	"time"

	"github.com/dm/weatherface/internal/format"
	"github.com/dm/weatherface/internal/model"
)

// Snapshot derives the clock strings for now.
func Snapshot(now time.Time, is24h bool) model.ClockSnapshot {
	return model.ClockSnapshot{
		Hour:     format.FormatHour(now, is24h),
		Minute:   format.FormatMinute(now),
		Weekday:  format.FormatWeekday(now),
		MonthDay: format.FormatMonthDay(now),
	}
}

// UpdateTime writes the hour and minute strings for now.
func (a *App) UpdateTime(now time.Time) {
	snap := Snapshot(now, a.cfg.Clock24h)
	a.display.SetText(SurfaceHour, snap.Hour)
	a.display.SetText(SurfaceMinute, snap.Minute)
}

// UpdateDate writes the weekday and month-day strings for now.
func (a *App) UpdateDate(now time.Time) {
	snap := Snapshot(now, a.cfg.Clock24h)
	a.display.SetText(SurfaceDay, snap.Weekday)
	a.display.SetText(SurfaceDate, snap.MonthDay)
}

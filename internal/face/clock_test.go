package face

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateTime_Idempotent(t *testing.T) {
	h := newHarness(Config{})
	at := tuesday(7, 5)

	h.app.UpdateTime(at)
	first := []string{h.display.text[SurfaceHour], h.display.text[SurfaceMinute]}
	h.app.UpdateTime(at)
	second := []string{h.display.text[SurfaceHour], h.display.text[SurfaceMinute]}

	assert.Equal(t, []string{"7", ":05"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, h.display.writes[SurfaceHour], "each call overwrites")
}

func TestUpdateDate(t *testing.T) {
	h := newHarness(Config{})
	h.app.UpdateDate(tuesday(7, 5))
	assert.Equal(t, "Tuesday", h.display.text[SurfaceDay])
	assert.Equal(t, "Oct 08", h.display.text[SurfaceDate])
}

func TestSnapshot(t *testing.T) {
	at := time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC)
	snap := Snapshot(at, false)
	assert.Equal(t, "11", snap.Hour)
	assert.Equal(t, ":59", snap.Minute)
	assert.Equal(t, "Friday", snap.Weekday)
	assert.Equal(t, "Jan 03", snap.MonthDay)

	assert.Equal(t, "23", Snapshot(at, true).Hour)
}

func TestStart_FillsEverySurface(t *testing.T) {
	h := newHarness(Config{})
	h.app.Start(tuesday(14, 12))

	assert.Equal(t, "2", h.display.text[SurfaceHour])
	assert.Equal(t, ":12", h.display.text[SurfaceMinute])
	assert.Equal(t, "Tuesday", h.display.text[SurfaceDay])
	assert.Equal(t, "Oct 08", h.display.text[SurfaceDate])
	assert.Equal(t, "-°F", h.display.text[SurfaceTemperature])
	assert.Equal(t, 80, h.app.BatteryLevel())
	assert.Equal(t, 1, h.display.dirty[SurfaceBattery])
	assert.Empty(t, h.outbox.sent, "start does not request weather")
}

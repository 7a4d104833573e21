package format

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used on the watch surfaces.
const (
	layoutHour24   = "15"
	layoutHour12   = "3"
	layoutMinute   = ":04"
	layoutWeekday  = "Monday"
	layoutMonthDay = "Jan 02"
)

// FormatHour formats the hour of t for the hour surface.
// 24-hour style is zero-padded ("09", "14"); 12-hour style drops the leading
// zero ("9", "2") and maps midnight and noon to "12".
func FormatHour(t time.Time, is24h bool) string {
	if is24h {
		return t.Format(layoutHour24)
	}
	return t.Format(layoutHour12)
}

// FormatMinute formats the minute of t with its separator, e.g. ":05".
func FormatMinute(t time.Time) string {
	return t.Format(layoutMinute)
}

// FormatWeekday returns the full English weekday name, e.g. "Tuesday".
func FormatWeekday(t time.Time) string {
	return t.Format(layoutWeekday)
}

// FormatMonthDay returns the abbreviated month and zero-padded day, e.g. "Oct 06".
func FormatMonthDay(t time.Time) string {
	return t.Format(layoutMonthDay)
}

// FormatTemperature formats whole degrees with a unit symbol.
// Example: (72, "F") → "72°F". An empty unit defaults to "F".
func FormatTemperature(degrees int, unit string) string {
	if unit == "" {
		unit = "F"
	}
	return fmt.Sprintf("%d°%s", degrees, strings.ToUpper(unit))
}

// PlaceholderTemperature is shown until the first weather reply arrives.
func PlaceholderTemperature(unit string) string {
	if unit == "" {
		unit = "F"
	}
	return "-°" + strings.ToUpper(unit)
}

// FormatPercent formats a percentage with one decimal place.
// Example: 34.5 → "34.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

package model

import (
	"strings"
	"time"
)

// TimeUnits is a bit set of the calendar units that rolled over on a tick.
type TimeUnits uint8

const (
	SecondUnit TimeUnits = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

// Has reports whether every unit in u is set in t.
func (t TimeUnits) Has(u TimeUnits) bool {
	return t&u == u && u != 0
}

// String lists the set units, e.g. "minute|hour".
func (t TimeUnits) String() string {
	names := []struct {
		unit TimeUnits
		name string
	}{
		{SecondUnit, "second"},
		{MinuteUnit, "minute"},
		{HourUnit, "hour"},
		{DayUnit, "day"},
		{MonthUnit, "month"},
		{YearUnit, "year"},
	}
	var parts []string
	for _, n := range names {
		if t&n.unit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ChangedUnits returns the units whose value differs between prev and now.
// A zero prev (first tick) reports every unit as changed. Larger units imply
// the smaller ones, so a new day always carries hour and minute as well.
func ChangedUnits(prev, now time.Time) TimeUnits {
	if prev.IsZero() {
		return SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit | YearUnit
	}
	var u TimeUnits
	if now.Year() != prev.Year() {
		u |= YearUnit
	}
	if u != 0 || now.Month() != prev.Month() {
		u |= MonthUnit
	}
	if u != 0 || now.Day() != prev.Day() {
		u |= DayUnit
	}
	if u != 0 || now.Hour() != prev.Hour() {
		u |= HourUnit
	}
	if u != 0 || now.Minute() != prev.Minute() {
		u |= MinuteUnit
	}
	if u != 0 || now.Second() != prev.Second() {
		u |= SecondUnit
	}
	return u
}

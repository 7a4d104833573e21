package model

// ClockSnapshot holds the display strings derived from a single wall-clock
// instant. It is never stored; callers rebuild it on every request.
type ClockSnapshot struct {
	Hour     string // "2" or "14" depending on the 12/24-hour style
	Minute   string // ":30"
	Weekday  string // "Tuesday"
	MonthDay string // "Oct 06"
}

package model

// BatteryState is a battery reading as reported by the host battery service.
type BatteryState struct {
	ChargePercent int
	IsCharging    bool
	IsPlugged     bool
}

// Clamped returns the state with ChargePercent forced into [0, 100].
func (s BatteryState) Clamped() BatteryState {
	switch {
	case s.ChargePercent < 0:
		s.ChargePercent = 0
	case s.ChargePercent > 100:
		s.ChargePercent = 100
	}
	return s
}

// WeatherReading is a single reply from the companion. Only the temperature
// reaches the display; Conditions is kept for logging.
type WeatherReading struct {
	Temperature int    // whole degrees in the configured unit
	Conditions  string // short label, e.g. "Partly Cloudy"
}

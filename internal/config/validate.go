package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It does not mutate the configuration.
func Validate(cfg *Config) error {
	// face
	switch strings.ToUpper(cfg.Face.TemperatureUnit) {
	case "F", "C":
	default:
		return fmt.Errorf("face: temperature_unit must be F or C, got %q", cfg.Face.TemperatureUnit)
	}
	if n := cfg.Face.WeatherInterval; n <= 0 || n > 60 || 60%n != 0 {
		return fmt.Errorf("face: weather_interval_minutes must divide 60, got %d", n)
	}

	// channel
	if cfg.Channel.InboxSize < 16 || cfg.Channel.InboxSize > 8192 {
		return fmt.Errorf("channel: inbox_size must be within [16, 8192], got %d", cfg.Channel.InboxSize)
	}
	if cfg.Channel.OutboxSize < 16 || cfg.Channel.OutboxSize > 8192 {
		return fmt.Errorf("channel: outbox_size must be within [16, 8192], got %d", cfg.Channel.OutboxSize)
	}
	if cfg.Channel.SendTimeout <= 0 {
		return fmt.Errorf("channel: send_timeout must be positive")
	}

	// companion
	if cfg.Companion.Enabled {
		if cfg.Companion.Latitude < -90 || cfg.Companion.Latitude > 90 {
			return fmt.Errorf("companion: latitude %v out of range", cfg.Companion.Latitude)
		}
		if cfg.Companion.Longitude < -180 || cfg.Companion.Longitude > 180 {
			return fmt.Errorf("companion: longitude %v out of range", cfg.Companion.Longitude)
		}
		if cfg.Companion.Timeout <= 0 {
			return fmt.Errorf("companion: timeout must be positive")
		}
	}

	// battery
	switch cfg.Battery.Source {
	case "sysfs":
		if cfg.Battery.PollInterval <= 0 {
			return fmt.Errorf("battery: poll_interval must be positive")
		}
	case "static":
		if cfg.Battery.StaticPercent < 0 || cfg.Battery.StaticPercent > 100 {
			return fmt.Errorf("battery: static_percent must be within [0, 100], got %d", cfg.Battery.StaticPercent)
		}
	default:
		return fmt.Errorf("battery: source must be sysfs or static, got %q", cfg.Battery.Source)
	}

	return nil
}

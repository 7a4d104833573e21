// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is used for the XDG config and state directories.
const AppName = "weatherface"

// Config is the whole configuration file.
type Config struct {
	Face      FaceConfig      `yaml:"face"`
	Channel   ChannelConfig   `yaml:"channel"`
	Companion CompanionConfig `yaml:"companion"`
	Battery   BatteryConfig   `yaml:"battery"`
	Log       LogConfig       `yaml:"log"`
}

// ---- FACE ----

type FaceConfig struct {
	VibrateEveryHour bool   `yaml:"vibrate_every_hour"`
	Clock24h         bool   `yaml:"clock_24h"`
	TemperatureUnit  string `yaml:"temperature_unit"` // F or C
	WeatherInterval  int    `yaml:"weather_interval_minutes"`
}

// ---- MESSAGE CHANNEL ----

type ChannelConfig struct {
	InboxSize   int           `yaml:"inbox_size"`
	OutboxSize  int           `yaml:"outbox_size"`
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// ---- COMPANION ----

type CompanionConfig struct {
	Enabled      bool          `yaml:"enabled"`
	BaseURL      string        `yaml:"base_url"`
	Latitude     float64       `yaml:"latitude"`
	Longitude    float64       `yaml:"longitude"`
	FetchOnReady bool          `yaml:"fetch_on_ready"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ---- BATTERY ----

type BatteryConfig struct {
	Source        string        `yaml:"source"` // sysfs or static
	Root          string        `yaml:"root"`
	Name          string        `yaml:"name"`
	StaticPercent int           `yaml:"static_percent"`
	PollInterval  time.Duration `yaml:"poll_interval"`
}

// ---- LOG ----

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Face: FaceConfig{
			VibrateEveryHour: true,
			TemperatureUnit:  "F",
			WeatherInterval:  30,
		},
		Channel: ChannelConfig{
			InboxSize:   128,
			OutboxSize:  128,
			SendTimeout: 10 * time.Second,
		},
		Companion: CompanionConfig{
			Enabled:      true,
			BaseURL:      "https://api.open-meteo.com",
			Latitude:     40.7128,
			Longitude:    -74.0060,
			FetchOnReady: true,
			Timeout:      15 * time.Second,
		},
		Battery: BatteryConfig{
			Source:        "sysfs",
			Root:          "/sys/class/power_supply",
			StaticPercent: 100,
			PollInterval:  30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the XDG config file location, whether or not it exists.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads path over the defaults. An empty path looks for the file in the
// XDG config directories and falls back to Default when none exists.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(AppName + "/config.yaml")
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s not found", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Package face implements the watchface core: clock and date formatting, the
// battery gauge, the weather request/reply exchange and the tick dispatcher.
// It owns no goroutines; the host calls into it from a single event loop.
package face

import (
	"log/slog"
	"time"

	"github.com/dm/weatherface/internal/format"
	"github.com/dm/weatherface/internal/logging"
)

// DefaultBatteryBarWidth is the width of the battery gauge in pixels.
const DefaultBatteryBarWidth = 25

// Placeholder strings shown before the first real values are computed.
const (
	placeholderHour   = "23"
	placeholderMinute = ":55"
	placeholderDate   = "000 00"
)

// Config holds the face settings fixed at start-up.
type Config struct {
	VibrateEveryHour bool
	Clock24h         bool
	TemperatureUnit  string // "F" or "C"
	BatteryBarWidth  int
	WeatherInterval  int // minutes between weather requests; must divide 60
}

// Deps are the host services the face talks to. Log may be nil.
type Deps struct {
	Display Display
	Outbox  Outbox
	Vibes   Vibes
	Battery BatteryService
	Log     *slog.Logger
}

// App is the watchface state shared by all handlers.
type App struct {
	cfg Config

	display Display
	outbox  Outbox
	vibes   Vibes
	battery BatteryService
	log     *slog.Logger

	batteryLevel int
}

var _ Handlers = (*App)(nil)

// New creates an App. Zero config fields take their defaults.
func New(cfg Config, deps Deps) *App {
	if cfg.BatteryBarWidth <= 0 {
		cfg.BatteryBarWidth = DefaultBatteryBarWidth
	}
	if cfg.WeatherInterval <= 0 || 60%cfg.WeatherInterval != 0 {
		cfg.WeatherInterval = 30
	}
	if cfg.TemperatureUnit == "" {
		cfg.TemperatureUnit = "F"
	}
	log := deps.Log
	if log == nil {
		log = logging.Logger()
	}
	return &App{
		cfg:     cfg,
		display: deps.Display,
		outbox:  deps.Outbox,
		vibes:   deps.Vibes,
		battery: deps.Battery,
		log:     log.With("component", "face"),
	}
}

// Config returns the effective configuration.
func (a *App) Config() Config { return a.cfg }

// Start fills every surface: placeholders first, then the real time, date and
// battery level.
func (a *App) Start(now time.Time) {
	a.display.SetText(SurfaceHour, placeholderHour)
	a.display.SetText(SurfaceMinute, placeholderMinute)
	a.display.SetText(SurfaceDate, placeholderDate)
	a.display.SetText(SurfaceTemperature, format.PlaceholderTemperature(a.cfg.TemperatureUnit))

	a.UpdateTime(now)
	a.UpdateDate(now)

	if a.battery != nil {
		a.OnBatteryChange(a.battery.Peek())
	}
	a.log.Info("watchface started",
		"vibrate_every_hour", a.cfg.VibrateEveryHour,
		"clock_24h", a.cfg.Clock24h)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/client"
	"github.com/dm/weatherface/internal/companion"
	"github.com/dm/weatherface/internal/config"
	"github.com/dm/weatherface/internal/face"
	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
	"github.com/dm/weatherface/internal/power"
	"github.com/dm/weatherface/internal/tui"
)

// parseLocation parses a "lat,lon" pair in decimal degrees.
func parseLocation(s string) (lat, lon float64, err error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid location %q: want lat,lon", s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return lat, lon, nil
}

// batterySource picks the power source named in the configuration.
func batterySource(cfg config.BatteryConfig) power.Source {
	if cfg.Source == "static" {
		return power.Static(model.BatteryState{ChargePercent: cfg.StaticPercent, IsPlugged: true})
	}
	return power.Sysfs{Root: cfg.Root, Name: cfg.Name}
}

// faceConfig maps the file's face section onto the watchface settings.
func faceConfig(cfg config.FaceConfig) face.Config {
	return face.Config{
		VibrateEveryHour: cfg.VibrateEveryHour,
		Clock24h:         cfg.Clock24h,
		TemperatureUnit:  strings.ToUpper(cfg.TemperatureUnit),
		WeatherInterval:  cfg.WeatherInterval,
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func main() {
	var (
		configPath = flag.String("config", "", "config file (default "+config.DefaultPath()+")")
		location   = flag.String("location", "", "weather location as lat,lon (overrides config)")
		clock24h   = flag.Bool("24h", false, "show the time in 24-hour format (overrides config)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: weatherface [--config file] [--location lat,lon] [--24h] [--log-level level]\n\n")
		fmt.Fprintf(os.Stderr, "examples:\n")
		fmt.Fprintf(os.Stderr, "  weatherface\n")
		fmt.Fprintf(os.Stderr, "  weatherface --location 51.5072,-0.1276 --24h\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q\n", args[0])
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}

	// Only flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "24h":
			cfg.Face.Clock24h = *clock24h
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if *location != "" {
		lat, lon, err := parseLocation(*location)
		if err != nil {
			fail(err)
		}
		cfg.Companion.Latitude, cfg.Companion.Longitude = lat, lon
	}

	if err := config.Validate(&cfg); err != nil {
		fail(err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fail(err)
	}
	logFile, err := logging.OpenFile(config.AppName, cfg.Log.File)
	if err != nil {
		fail(err)
	}
	defer logFile.Close()
	log := logging.Init(logging.Config{Level: level, JSON: cfg.Log.JSON, Output: logFile})

	ch := appmsg.New(appmsg.Config{
		InboxSize:   cfg.Channel.InboxSize,
		OutboxSize:  cfg.Channel.OutboxSize,
		SendTimeout: cfg.Channel.SendTimeout,
	})
	defer ch.Close()

	battery := power.NewService(batterySource(cfg.Battery))

	var comp *companion.Service
	if cfg.Companion.Enabled {
		c, err := client.NewDefaultClient(client.ClientConfig{
			BaseURL:        cfg.Companion.BaseURL,
			Latitude:       cfg.Companion.Latitude,
			Longitude:      cfg.Companion.Longitude,
			Unit:           cfg.Face.TemperatureUnit,
			RequestTimeout: cfg.Companion.Timeout,
		})
		if err != nil {
			fail(err)
		}
		comp = companion.New(companion.Config{
			FetchOnReady: cfg.Companion.FetchOnReady,
			FetchTimeout: cfg.Companion.Timeout,
		}, ch, c)
	}

	app := tui.NewApp(tui.Options{
		Face:     faceConfig(cfg.Face),
		Outbox:   ch,
		Events:   ch.Events(),
		Battery:  battery,
		Location: fmt.Sprintf("%.4f,%.4f", cfg.Companion.Latitude, cfg.Companion.Longitude),
		Log:      log,
	})
	program := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})
	g.Go(func() error {
		return battery.Monitor(gctx, cfg.Battery.PollInterval, func(st model.BatteryState) {
			program.Send(tui.BatteryMsg(st))
		})
	})
	if comp != nil {
		g.Go(func() error {
			return comp.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("weatherface stopped", logging.KeyError, err)
		fail(err)
	}
}

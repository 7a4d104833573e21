// Package power is the host battery service. It reads the machine's battery
// from sysfs and reports changes to the face.
package power

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// DefaultRoot is where Linux exposes power supplies.
const DefaultRoot = "/sys/class/power_supply"

// DefaultPollInterval is how often Monitor re-reads the battery.
const DefaultPollInterval = 30 * time.Second

var ErrNoBattery = errors.New("power: no battery found")

// Source produces battery readings.
type Source interface {
	Read() (model.BatteryState, error)
}

// Sysfs reads a battery from a power_supply directory. Name selects the
// supply (e.g. "BAT0"); empty picks the first entry whose type is Battery.
type Sysfs struct {
	Root string
	Name string
}

// Read implements Source.
func (s Sysfs) Read() (model.BatteryState, error) {
	root := s.Root
	if root == "" {
		root = DefaultRoot
	}
	name := s.Name
	if name == "" {
		var err error
		if name, err = findBattery(root); err != nil {
			return model.BatteryState{}, err
		}
	}
	dir := filepath.Join(root, name)

	raw, err := readTrimmed(filepath.Join(dir, "capacity"))
	if err != nil {
		return model.BatteryState{}, fmt.Errorf("read capacity: %w", err)
	}
	pct, err := strconv.Atoi(raw)
	if err != nil {
		return model.BatteryState{}, fmt.Errorf("parse capacity %q: %w", raw, err)
	}

	// status is optional on some firmware
	status, _ := readTrimmed(filepath.Join(dir, "status"))
	state := model.BatteryState{
		ChargePercent: pct,
		IsCharging:    status == "Charging",
		IsPlugged:     status == "Charging" || status == "Full" || status == "Not charging",
	}
	return state.Clamped(), nil
}

func findBattery(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoBattery
		}
		return "", fmt.Errorf("list power supplies: %w", err)
	}
	for _, e := range entries {
		typ, err := readTrimmed(filepath.Join(root, e.Name(), "type"))
		if err == nil && typ == "Battery" {
			return e.Name(), nil
		}
	}
	return "", ErrNoBattery
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Static always reports the same state. It stands in for machines without
// a battery.
type Static model.BatteryState

// Read implements Source.
func (s Static) Read() (model.BatteryState, error) {
	return model.BatteryState(s).Clamped(), nil
}

// Service caches the last reading so Peek never blocks or fails.
type Service struct {
	src Source

	mu   sync.Mutex
	last model.BatteryState
}

// NewService takes an initial reading from src. When that fails the service
// reports a full, plugged battery until a read succeeds.
func NewService(src Source) *Service {
	s := &Service{src: src, last: model.BatteryState{ChargePercent: 100, IsPlugged: true}}
	if st, err := src.Read(); err == nil {
		s.last = st
	} else {
		logging.Logger().Warn("battery unavailable, assuming mains power", logging.KeyError, err)
	}
	return s
}

// Peek returns the most recent reading.
func (s *Service) Peek() model.BatteryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// refresh reads the source and reports whether the state changed.
func (s *Service) refresh() (model.BatteryState, bool, error) {
	st, err := s.src.Read()
	if err != nil {
		return model.BatteryState{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := st != s.last
	s.last = st
	return st, changed, nil
}

// Monitor polls the service every interval and calls notify with each new
// state until ctx is cancelled. Read errors are logged and skipped.
func (s *Service) Monitor(ctx context.Context, interval time.Duration, notify func(model.BatteryState)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			st, changed, err := s.refresh()
			if err != nil {
				logging.Logger().Debug("battery read failed", logging.KeyError, err)
				continue
			}
			if changed {
				notify(st)
			}
		}
	}
}

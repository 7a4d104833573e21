package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/face"
	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// pulseDuration is how long the bezel stays lit for one haptic pulse.
const pulseDuration = 400 * time.Millisecond

// Options configures the simulator.
type Options struct {
	Face    face.Config
	Outbox  face.Outbox
	Events  <-chan appmsg.Event
	Battery face.BatteryService
	// Location labels the header, e.g. the companion's coordinates.
	Location string
	// Now overrides the wall clock in tests.
	Now func() time.Time
	Log *slog.Logger
}

// App is the root Bubble Tea model: the host runtime for the watchface. It
// owns the surfaces and turns timer, battery and channel messages into face
// handler calls, one at a time.
type App struct {
	face     *face.App
	screen   *screen
	events   <-chan appmsg.Event
	now      func() time.Time
	log      *slog.Logger
	location string

	lastTick time.Time
	pending  []tea.Cmd

	// Haptics
	pulsing  bool
	pulseSeq int
	pulses   int

	// Battery
	battery model.BatteryState
	history *model.BatteryHistory

	// Link
	linkClosed  bool
	counts      map[appmsg.EventKind]int
	lastEvent   *appmsg.Event
	lastWeather time.Time

	// Layout
	width, height int

	// UI state
	showHelp bool
}

var _ face.Vibes = (*App)(nil)

// NewApp creates the simulator and runs the face's start-up sequence.
func NewApp(opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = logging.Logger()
	}

	app := &App{
		events:   opts.Events,
		now:      now,
		log:      log.With("component", "host"),
		location: opts.Location,
		history:  model.NewBatteryHistory(0),
		counts:   make(map[appmsg.EventKind]int),
	}
	app.screen = newScreen()
	app.face = face.New(opts.Face, face.Deps{
		Display: app.screen,
		Outbox:  opts.Outbox,
		Vibes:   app,
		Battery: opts.Battery,
		Log:     log,
	})
	app.screen.setGaugeWidth(app.face.Config().BatteryBarWidth)

	start := now()
	app.face.Start(start)
	app.lastTick = start
	if opts.Battery != nil {
		app.recordBattery(opts.Battery.Peek(), start)
	}
	app.screen.redraw(app.face.DrawBattery)
	return app
}

// Init implements tea.Model. Arms the minute timer and starts listening for
// channel events.
func (app *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForEvent(app.events))
}

// Update implements tea.Model. It is the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var next tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case TickMsg:
		t := time.Time(msg)
		changed := model.ChangedUnits(app.lastTick, t)
		app.lastTick = t
		app.log.Debug("tick", logging.KeyUnits, changed.String())
		app.face.OnTick(t, changed)
		next = tickCmd()

	case BatteryMsg:
		state := model.BatteryState(msg)
		app.recordBattery(state, app.now())
		app.face.OnBatteryChange(state)

	case ChannelMsg:
		app.dispatch(appmsg.Event(msg))
		next = waitForEvent(app.events)

	case channelClosedMsg:
		app.linkClosed = true

	case pulseEndMsg:
		if msg.seq == app.pulseSeq {
			app.pulsing = false
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			app.face.RequestWeather()
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	app.screen.redraw(app.face.DrawBattery)
	return app, app.flush(next)
}

// View implements tea.Model. Renders the full simulator.
func (app *App) View() string {
	parts := []string{
		renderHeader(app),
		renderBody(app),
		renderFooter(app),
	}
	return strings.Join(parts, "\n")
}

// ShortPulse implements face.Vibes by lighting the bezel briefly.
func (app *App) ShortPulse() {
	app.pulsing = true
	app.pulseSeq++
	app.pulses++
	seq := app.pulseSeq
	app.pending = append(app.pending, tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseEndMsg{seq: seq}
	}))
}

// dispatch routes one channel event to the matching face handler.
func (app *App) dispatch(ev appmsg.Event) {
	app.counts[ev.Kind]++
	app.lastEvent = &ev
	switch ev.Kind {
	case appmsg.EventReceived:
		if _, err := face.ParseReply(ev.Dict); err == nil {
			app.lastWeather = app.now()
		}
		app.face.OnMessageReceived(ev.Dict)
	case appmsg.EventDropped:
		app.face.OnMessageDropped(ev.Reason)
	case appmsg.EventSent:
		app.face.OnMessageSent(ev.Dict)
	case appmsg.EventFailed:
		app.face.OnMessageFailed(ev.Dict, ev.Reason)
	}
}

func (app *App) recordBattery(state model.BatteryState, at time.Time) {
	app.battery = state.Clamped()
	app.history.Push(model.BatteryPoint{Timestamp: at, ChargePercent: app.battery.ChargePercent})
}

// flush batches commands queued by handlers with next.
func (app *App) flush(next tea.Cmd) tea.Cmd {
	if len(app.pending) == 0 {
		return next
	}
	cmds := append(app.pending, next)
	app.pending = nil
	return tea.Batch(cmds...)
}

// tickCmd fires on the next wall-clock minute boundary.
func tickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForEvent blocks on the channel's event stream and forwards one event.
func waitForEvent(events <-chan appmsg.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return channelClosedMsg{}
		}
		return ChannelMsg(ev)
	}
}

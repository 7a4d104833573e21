package face

import (
	"bytes"
	"log/slog"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/model"
)

// fakeDisplay records surface writes.
type fakeDisplay struct {
	text   map[SurfaceID]string
	writes map[SurfaceID]int
	dirty  map[SurfaceID]int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		text:   map[SurfaceID]string{},
		writes: map[SurfaceID]int{},
		dirty:  map[SurfaceID]int{},
	}
}

func (d *fakeDisplay) SetText(s SurfaceID, text string) {
	d.text[s] = text
	d.writes[s]++
}

func (d *fakeDisplay) MarkDirty(s SurfaceID) { d.dirty[s]++ }

// fakeOutbox records sends and answers with result.
type fakeOutbox struct {
	sent   []appmsg.Dict
	result appmsg.Result
}

func (o *fakeOutbox) Send(d appmsg.Dict) appmsg.Result {
	o.sent = append(o.sent, d)
	return o.result
}

type fakeVibes struct{ pulses int }

func (v *fakeVibes) ShortPulse() { v.pulses++ }

type fakeBattery struct{ state model.BatteryState }

func (b fakeBattery) Peek() model.BatteryState { return b.state }

// fakeCanvas records fills.
type fakeCanvas struct {
	bounds Rect
	fills  []fill
}

type fill struct {
	r Rect
	c Color
}

func (c *fakeCanvas) Bounds() Rect { return c.bounds }

func (c *fakeCanvas) FillRect(r Rect, col Color) { c.fills = append(c.fills, fill{r, col}) }

type harness struct {
	app     *App
	display *fakeDisplay
	outbox  *fakeOutbox
	vibes   *fakeVibes
	logs    *bytes.Buffer
}

func newHarness(cfg Config) *harness {
	h := &harness{
		display: newFakeDisplay(),
		outbox:  &fakeOutbox{},
		vibes:   &fakeVibes{},
		logs:    &bytes.Buffer{},
	}
	log := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h.app = New(cfg, Deps{
		Display: h.display,
		Outbox:  h.outbox,
		Vibes:   h.vibes,
		Battery: fakeBattery{state: model.BatteryState{ChargePercent: 80}},
		Log:     log,
	})
	return h
}

package face

import (
	"time"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/model"
)

// SurfaceID names a drawable region owned by the host.
type SurfaceID int

const (
	SurfaceHour SurfaceID = iota
	SurfaceMinute
	SurfaceDay
	SurfaceDate
	SurfaceTemperature
	SurfaceBattery
)

func (s SurfaceID) String() string {
	switch s {
	case SurfaceHour:
		return "hour"
	case SurfaceMinute:
		return "minute"
	case SurfaceDay:
		return "day"
	case SurfaceDate:
		return "date"
	case SurfaceTemperature:
		return "temperature"
	case SurfaceBattery:
		return "battery"
	default:
		return "unknown"
	}
}

// Display is the part of the host rendering framework the face writes to.
type Display interface {
	SetText(s SurfaceID, text string)
	MarkDirty(s SurfaceID)
}

// Color is a two-tone fill color.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
)

// Rect is an integer rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H int
}

// Canvas is the drawing context handed to a custom surface's draw routine.
type Canvas interface {
	Bounds() Rect
	FillRect(r Rect, c Color)
}

// Outbox submits a dictionary to the companion without blocking.
type Outbox interface {
	Send(d appmsg.Dict) appmsg.Result
}

// Vibes drives the haptic motor.
type Vibes interface {
	ShortPulse()
}

// BatteryService answers the synchronous start-up battery query.
type BatteryService interface {
	Peek() model.BatteryState
}

// Handlers is the set of callbacks the host invokes from its event loop.
// Every call runs to completion before the next event is dispatched.
type Handlers interface {
	OnTick(now time.Time, changed model.TimeUnits)
	OnBatteryChange(state model.BatteryState)
	OnMessageReceived(d appmsg.Dict)
	OnMessageDropped(reason appmsg.Result)
	OnMessageSent(d appmsg.Dict)
	OnMessageFailed(d appmsg.Dict, reason appmsg.Result)
}

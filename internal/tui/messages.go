package tui

import (
	"time"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/model"
)

// TickMsg is a wall-clock minute boundary from the host timer.
type TickMsg time.Time

// BatteryMsg carries a battery reading from the power monitor.
type BatteryMsg model.BatteryState

// ChannelMsg carries a message-channel event to the face.
type ChannelMsg appmsg.Event

// channelClosedMsg signals that the event stream ended.
type channelClosedMsg struct{}

// pulseEndMsg ends the on-screen haptic flash.
type pulseEndMsg struct{ seq int }

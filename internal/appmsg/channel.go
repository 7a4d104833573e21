package appmsg

import (
	"sync"
	"time"
)

// Default channel settings.
const (
	DefaultInboxSize   = 128
	DefaultOutboxSize  = 128
	DefaultSendTimeout = 10 * time.Second
	defaultEventBuffer = 16
)

// EventKind tags an Event delivered to the face side of the channel.
type EventKind int

const (
	EventReceived EventKind = iota // inbound dictionary accepted into the inbox
	EventDropped                   // inbound dictionary discarded
	EventSent                      // outbound dictionary acknowledged by the companion
	EventFailed                    // outbound dictionary rejected or timed out
)

func (k EventKind) String() string {
	switch k {
	case EventReceived:
		return "received"
	case EventDropped:
		return "dropped"
	case EventSent:
		return "sent"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a notification for the face side. Dict is empty for EventDropped.
type Event struct {
	Kind   EventKind
	Dict   Dict
	Reason Result
}

// Envelope is an outbound dictionary as seen by the companion. ID must be
// passed back to Ack or Nack.
type Envelope struct {
	ID   uint64
	Dict Dict
}

// Config holds the channel's buffer capacities in encoded bytes.
type Config struct {
	InboxSize   int
	OutboxSize  int
	SendTimeout time.Duration
}

// Channel is a bounded, asynchronous link between the face and its companion.
// The face calls Send and consumes Events; the companion consumes Requests and
// answers with Ack, Nack and Deliver. Only one outbound dictionary may be in
// flight at a time. Every dictionary crosses the channel in its encoded form.
type Channel struct {
	cfg Config

	mu       sync.Mutex
	nextID   uint64
	inflight uint64 // 0 when the outbox is free
	timer    *time.Timer
	closed   bool

	requests chan Envelope
	events   chan Event
	done     chan struct{}
}

// New returns an open channel. Zero config fields take the package defaults.
func New(cfg Config) *Channel {
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = DefaultInboxSize
	}
	if cfg.OutboxSize <= 0 {
		cfg.OutboxSize = DefaultOutboxSize
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	return &Channel{
		cfg:      cfg,
		requests: make(chan Envelope, 1),
		events:   make(chan Event, defaultEventBuffer),
		done:     make(chan struct{}),
	}
}

// Config returns the effective configuration.
func (c *Channel) Config() Config { return c.cfg }

// Send enqueues d for the companion and returns immediately. The final
// outcome arrives later as EventSent or EventFailed.
func (c *Channel) Send(d Dict) Result {
	if d.Len() == 0 {
		return ResultInvalidArgs
	}
	if d.Size() > c.cfg.OutboxSize {
		return ResultBufferOverflow
	}
	wire, err := d.MarshalBinary()
	if err != nil {
		return ResultInvalidArgs
	}
	var copyOut Dict
	if err := copyOut.UnmarshalBinary(wire); err != nil {
		return ResultInternalError
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ResultClosed
	}
	if c.inflight != 0 {
		return ResultBusy
	}
	c.nextID++
	env := Envelope{ID: c.nextID, Dict: copyOut}
	select {
	case c.requests <- env:
	default:
		return ResultBusy
	}
	c.inflight = env.ID
	c.timer = time.AfterFunc(c.cfg.SendTimeout, func() {
		c.expire(env.ID, d)
	})
	return ResultOK
}

// Requests yields outbound dictionaries for the companion.
func (c *Channel) Requests() <-chan Envelope { return c.requests }

// Ack confirms delivery of the envelope with the given ID.
func (c *Channel) Ack(env Envelope) {
	c.finish(env.ID, Event{Kind: EventSent, Dict: env.Dict, Reason: ResultOK})
}

// Nack reports that the envelope could not be handled.
func (c *Channel) Nack(env Envelope, reason Result) {
	if reason == ResultOK {
		reason = ResultSendRejected
	}
	c.finish(env.ID, Event{Kind: EventFailed, Dict: env.Dict, Reason: reason})
}

// finish frees the outbox for id and emits ev. Outcomes for an envelope that
// already finished (late ack after a timeout) are ignored.
func (c *Channel) finish(id uint64, ev Event) {
	c.mu.Lock()
	if c.closed || c.inflight != id {
		c.mu.Unlock()
		return
	}
	c.inflight = 0
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.emit(ev)
}

// expire fails an envelope nobody acknowledged in time and takes it back out
// of the request queue if the companion never picked it up.
func (c *Channel) expire(id uint64, d Dict) {
	c.mu.Lock()
	if c.inflight == id {
		select {
		case <-c.requests:
		default:
		}
	}
	c.mu.Unlock()
	c.finish(id, Event{Kind: EventFailed, Dict: d, Reason: ResultSendTimeout})
}

// Deliver pushes d into the face's inbox. Dictionaries larger than the inbox
// are dropped and reported with EventDropped.
func (c *Channel) Deliver(d Dict) Result {
	if c.isClosed() {
		return ResultClosed
	}
	if d.Size() > c.cfg.InboxSize {
		c.emit(Event{Kind: EventDropped, Reason: ResultBufferOverflow})
		return ResultBufferOverflow
	}
	wire, err := d.MarshalBinary()
	if err != nil {
		c.emit(Event{Kind: EventDropped, Reason: ResultInvalidArgs})
		return ResultInvalidArgs
	}
	var in Dict
	if err := in.UnmarshalBinary(wire); err != nil {
		c.emit(Event{Kind: EventDropped, Reason: ResultInternalError})
		return ResultInternalError
	}
	if !c.emit(Event{Kind: EventReceived, Dict: in}) {
		return ResultClosed
	}
	return ResultOK
}

// Events yields notifications for the face in arrival order.
func (c *Channel) Events() <-chan Event { return c.events }

// Done is closed once Close has been called.
func (c *Channel) Done() <-chan struct{} { return c.done }

// Close stops the channel. Pending events are discarded; further sends
// return ResultClosed.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	close(c.done)
}

func (c *Channel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// emit blocks until the face side accepts ev or the channel closes.
func (c *Channel) emit(ev Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

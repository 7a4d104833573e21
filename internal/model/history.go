package model

import "time"

const defaultHistoryCap = 60

// BatteryPoint is a single timestamped charge reading stored in the ring buffer.
type BatteryPoint struct {
	Timestamp     time.Time
	ChargePercent int
}

// BatteryHistory is a fixed-size ring buffer of BatteryPoints.
// When the buffer is full, new pushes overwrite the oldest entry.
type BatteryHistory struct {
	buf  []BatteryPoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewBatteryHistory creates a BatteryHistory with the given capacity.
// If capacity <= 0, defaultHistoryCap (60) is used.
func NewBatteryHistory(capacity int) *BatteryHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &BatteryHistory{
		buf: make([]BatteryPoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *BatteryHistory) Push(p BatteryPoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *BatteryHistory) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *BatteryHistory) Clear() {
	h.head = 0
	h.size = 0
}

// Last returns the most recent point and false when the history is empty.
func (h *BatteryHistory) Last() (BatteryPoint, bool) {
	if h.size == 0 {
		return BatteryPoint{}, false
	}
	return h.buf[(h.head-1+len(h.buf))%len(h.buf)], true
}

// Values returns the charge percentages in chronological order (oldest first).
func (h *BatteryHistory) Values() []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		out[i] = float64(h.buf[(start+i)%len(h.buf)].ChargePercent)
	}
	return out
}

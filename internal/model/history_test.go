package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryHistory_PushAndLen(t *testing.T) {
	h := NewBatteryHistory(5)
	assert.Equal(t, 0, h.Len())

	h.Push(BatteryPoint{Timestamp: time.Now(), ChargePercent: 90})
	assert.Equal(t, 1, h.Len())

	h.Push(BatteryPoint{Timestamp: time.Now(), ChargePercent: 80})
	h.Push(BatteryPoint{Timestamp: time.Now(), ChargePercent: 70})
	assert.Equal(t, 3, h.Len())
}

func TestBatteryHistory_OverwritesOldest(t *testing.T) {
	h := NewBatteryHistory(3)

	h.Push(BatteryPoint{ChargePercent: 10})
	h.Push(BatteryPoint{ChargePercent: 20})
	h.Push(BatteryPoint{ChargePercent: 30})
	require.Equal(t, 3, h.Len())

	// Push beyond capacity: oldest (10) should be overwritten
	h.Push(BatteryPoint{ChargePercent: 40})
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{20, 30, 40}, h.Values())

	h.Push(BatteryPoint{ChargePercent: 50})
	assert.Equal(t, []float64{30, 40, 50}, h.Values())
}

func TestBatteryHistory_Last(t *testing.T) {
	h := NewBatteryHistory(2)
	_, ok := h.Last()
	assert.False(t, ok)

	h.Push(BatteryPoint{ChargePercent: 55})
	h.Push(BatteryPoint{ChargePercent: 54})
	h.Push(BatteryPoint{ChargePercent: 53})

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, 53, last.ChargePercent)
}

func TestBatteryHistory_Clear(t *testing.T) {
	h := NewBatteryHistory(4)
	h.Push(BatteryPoint{ChargePercent: 1})
	h.Push(BatteryPoint{ChargePercent: 2})
	require.Equal(t, 2, h.Len())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Values())

	h.Push(BatteryPoint{ChargePercent: 99})
	assert.Equal(t, []float64{99}, h.Values())
}

func TestBatteryHistory_DefaultCapacity(t *testing.T) {
	h := NewBatteryHistory(0)
	for i := 0; i < 65; i++ {
		h.Push(BatteryPoint{ChargePercent: i})
	}
	// Default cap is 60, so entries 0-4 were overwritten
	assert.Equal(t, 60, h.Len())
	vals := h.Values()
	assert.Equal(t, float64(5), vals[0])
	assert.Equal(t, float64(64), vals[59])
}

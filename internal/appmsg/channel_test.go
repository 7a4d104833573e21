package appmsg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, c *Channel) Event {
	t.Helper()
	select {
	case ev := <-c.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel event")
		return Event{}
	}
}

func TestChannel_SendAck(t *testing.T) {
	c := New(Config{})
	defer c.Close()

	req := NewDict(Uint8(KeyRequestWeather, 0))
	require.Equal(t, ResultOK, c.Send(req))

	env := <-c.Requests()
	_, ok := env.Dict.Find(KeyRequestWeather)
	assert.True(t, ok)

	c.Ack(env)
	ev := nextEvent(t, c)
	assert.Equal(t, EventSent, ev.Kind)
	assert.Equal(t, ResultOK, ev.Reason)
}

func TestChannel_SendBusyWhileInFlight(t *testing.T) {
	c := New(Config{})
	defer c.Close()

	req := NewDict(Uint8(KeyRequestWeather, 0))
	require.Equal(t, ResultOK, c.Send(req))
	assert.Equal(t, ResultBusy, c.Send(req))

	env := <-c.Requests()
	c.Ack(env)
	nextEvent(t, c)

	assert.Equal(t, ResultOK, c.Send(req))
}

func TestChannel_SendRejectsOversizedAndEmpty(t *testing.T) {
	c := New(Config{OutboxSize: 16})
	defer c.Close()

	big := NewDict(CString(KeyConditions, strings.Repeat("x", 32)))
	assert.Equal(t, ResultBufferOverflow, c.Send(big))
	assert.Equal(t, ResultInvalidArgs, c.Send(Dict{}))
}

func TestChannel_Nack(t *testing.T) {
	c := New(Config{})
	defer c.Close()

	require.Equal(t, ResultOK, c.Send(NewDict(Uint8(KeyRequestWeather, 0))))
	env := <-c.Requests()
	c.Nack(env, ResultNotConnected)

	ev := nextEvent(t, c)
	assert.Equal(t, EventFailed, ev.Kind)
	assert.Equal(t, ResultNotConnected, ev.Reason)
}

func TestChannel_SendTimeout(t *testing.T) {
	c := New(Config{SendTimeout: 20 * time.Millisecond})
	defer c.Close()

	req := NewDict(Uint8(KeyRequestWeather, 0))
	require.Equal(t, ResultOK, c.Send(req))

	ev := nextEvent(t, c)
	assert.Equal(t, EventFailed, ev.Kind)
	assert.Equal(t, ResultSendTimeout, ev.Reason)

	// The expired envelope was withdrawn, so the outbox is usable again.
	assert.Equal(t, ResultOK, c.Send(req))
}

func TestChannel_LateAckIgnored(t *testing.T) {
	c := New(Config{SendTimeout: 20 * time.Millisecond})
	defer c.Close()

	require.Equal(t, ResultOK, c.Send(NewDict(Uint8(KeyRequestWeather, 0))))
	env := <-c.Requests()
	ev := nextEvent(t, c)
	require.Equal(t, ResultSendTimeout, ev.Reason)

	c.Ack(env)
	select {
	case ev := <-c.Events():
		t.Fatalf("unexpected event after timeout: %v", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChannel_DeliverAndDrop(t *testing.T) {
	c := New(Config{InboxSize: 32})
	defer c.Close()

	go func() {
		c.Deliver(NewDict(Int32(KeyTemperature, 70), CString(KeyConditions, "Clear")))
		c.Deliver(NewDict(CString(KeyConditions, strings.Repeat("y", 64))))
	}()

	ev := nextEvent(t, c)
	require.Equal(t, EventReceived, ev.Kind)
	temp, ok := ev.Dict.Find(KeyTemperature)
	require.True(t, ok)
	v, _ := temp.Int()
	assert.Equal(t, int64(70), v)

	ev = nextEvent(t, c)
	assert.Equal(t, EventDropped, ev.Kind)
	assert.Equal(t, ResultBufferOverflow, ev.Reason)
}

func TestChannel_Closed(t *testing.T) {
	c := New(Config{})
	c.Close()
	c.Close()

	assert.Equal(t, ResultClosed, c.Send(NewDict(Uint8(KeyRequestWeather, 0))))
	assert.Equal(t, ResultClosed, c.Deliver(NewDict(Int32(KeyTemperature, 1))))
	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "ok", ResultOK.String())
	assert.Equal(t, "buffer overflow", ResultBufferOverflow.String())
	assert.Equal(t, "result(3)", Result(3).String())
}

package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/model"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		dict    appmsg.Dict
		want    model.WeatherReading
		wantErr error
	}{
		{
			name: "both fields",
			dict: appmsg.NewDict(appmsg.Int32(appmsg.KeyTemperature, 68), appmsg.CString(appmsg.KeyConditions, "Clear")),
			want: model.WeatherReading{Temperature: 68, Conditions: "Clear"},
		},
		{
			name:    "temperature only",
			dict:    appmsg.NewDict(appmsg.Int32(appmsg.KeyTemperature, 68)),
			wantErr: ErrMissingConditions,
		},
		{
			name:    "conditions only",
			dict:    appmsg.NewDict(appmsg.CString(appmsg.KeyConditions, "Clear")),
			wantErr: ErrMissingTemperature,
		},
		{
			name:    "temperature as string",
			dict:    appmsg.NewDict(appmsg.CString(appmsg.KeyTemperature, "68"), appmsg.CString(appmsg.KeyConditions, "Clear")),
			wantErr: ErrMissingTemperature,
		},
		{
			name:    "conditions as int",
			dict:    appmsg.NewDict(appmsg.Int32(appmsg.KeyTemperature, 68), appmsg.Int32(appmsg.KeyConditions, 3)),
			wantErr: ErrMissingConditions,
		},
		{
			name:    "empty",
			dict:    appmsg.Dict{},
			wantErr: ErrMissingTemperature,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseReply(tc.dict)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOnMessageReceived_UpdatesTemperature(t *testing.T) {
	h := newHarness(Config{})
	h.app.OnMessageReceived(appmsg.NewDict(
		appmsg.Int32(appmsg.KeyTemperature, 72),
		appmsg.CString(appmsg.KeyConditions, "Partly Cloudy"),
	))
	assert.Equal(t, "72°F", h.display.text[SurfaceTemperature])
}

func TestOnMessageReceived_CelsiusUnit(t *testing.T) {
	h := newHarness(Config{TemperatureUnit: "C"})
	h.app.OnMessageReceived(appmsg.NewDict(
		appmsg.Int32(appmsg.KeyTemperature, -3),
		appmsg.CString(appmsg.KeyConditions, "Snow"),
	))
	assert.Equal(t, "-3°C", h.display.text[SurfaceTemperature])
}

func TestOnMessageReceived_PartialReplyLeavesDisplay(t *testing.T) {
	h := newHarness(Config{})
	h.app.Start(tuesday(9, 1))
	require.Equal(t, "-°F", h.display.text[SurfaceTemperature])
	writes := h.display.writes[SurfaceTemperature]

	h.app.OnMessageReceived(appmsg.NewDict(appmsg.Int32(appmsg.KeyTemperature, 72)))

	assert.Equal(t, "-°F", h.display.text[SurfaceTemperature])
	assert.Equal(t, writes, h.display.writes[SurfaceTemperature])
}

func TestOnMessageReceived_LateReplyStillApplied(t *testing.T) {
	h := newHarness(Config{})
	reply := func(temp int32) appmsg.Dict {
		return appmsg.NewDict(appmsg.Int32(appmsg.KeyTemperature, temp), appmsg.CString(appmsg.KeyConditions, "Rain"))
	}
	h.app.OnMessageReceived(reply(60))
	h.app.OnMessageReceived(reply(58))
	assert.Equal(t, "58°F", h.display.text[SurfaceTemperature])
}

func TestMessageOutcomesAreLogged(t *testing.T) {
	h := newHarness(Config{})
	h.app.OnMessageSent(WeatherRequest())
	h.app.OnMessageFailed(WeatherRequest(), appmsg.ResultSendTimeout)
	h.app.OnMessageDropped(appmsg.ResultBufferOverflow)

	logs := h.logs.String()
	assert.Contains(t, logs, "outbox send success")
	assert.Contains(t, logs, `reason="send timeout"`)
	assert.Contains(t, logs, `reason="buffer overflow"`)
	assert.Empty(t, h.display.text)
}

func TestWeatherRequest_Payload(t *testing.T) {
	d := WeatherRequest()
	require.Equal(t, 1, d.Len())
	tup, ok := d.Find(appmsg.KeyRequestWeather)
	require.True(t, ok)
	v, ok := tup.Int()
	require.True(t, ok)
	assert.Equal(t, int64(0), v)
	assert.Equal(t, appmsg.TypeUint, tup.Type)
}

package face

import (
	"errors"
	"fmt"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/format"
	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// Reply validation errors.
var (
	ErrMissingTemperature = errors.New("reply has no temperature")
	ErrMissingConditions  = errors.New("reply has no conditions")
)

// ParseReply extracts a reading from a companion reply. Both tuples must be
// present: an integer temperature and a string conditions label.
func ParseReply(d appmsg.Dict) (model.WeatherReading, error) {
	tempTuple, ok := d.Find(appmsg.KeyTemperature)
	if !ok {
		return model.WeatherReading{}, ErrMissingTemperature
	}
	condTuple, ok := d.Find(appmsg.KeyConditions)
	if !ok {
		return model.WeatherReading{}, ErrMissingConditions
	}
	temp, ok := tempTuple.Int()
	if !ok {
		return model.WeatherReading{}, fmt.Errorf("%w: got %s", ErrMissingTemperature, tempTuple.Type)
	}
	cond, ok := condTuple.Str()
	if !ok {
		return model.WeatherReading{}, fmt.Errorf("%w: got %s", ErrMissingConditions, condTuple.Type)
	}
	return model.WeatherReading{Temperature: int(temp), Conditions: cond}, nil
}

// WeatherRequest is the outbound dictionary asking the companion for weather.
func WeatherRequest() appmsg.Dict {
	return appmsg.NewDict(appmsg.Uint8(appmsg.KeyRequestWeather, 0))
}

// RequestWeather submits a weather request. Failures are logged only.
func (a *App) RequestWeather() appmsg.Result {
	res := a.outbox.Send(WeatherRequest())
	if res != appmsg.ResultOK {
		a.log.Error("weather request not queued", logging.KeyReason, res.String())
		return res
	}
	a.log.Debug("weather request queued")
	return res
}

// OnMessageReceived applies a weather reply. Replies missing either field
// are ignored and the display keeps its last value.
func (a *App) OnMessageReceived(d appmsg.Dict) {
	reading, err := ParseReply(d)
	if err != nil {
		a.log.Debug("ignoring reply", logging.KeyError, err)
		return
	}
	a.display.SetText(SurfaceTemperature, format.FormatTemperature(reading.Temperature, a.cfg.TemperatureUnit))
	a.log.Info("weather updated",
		logging.KeyTemp, reading.Temperature,
		logging.KeyCondition, reading.Conditions)
}

// OnMessageDropped logs an inbound message the host discarded.
func (a *App) OnMessageDropped(reason appmsg.Result) {
	a.log.Error("message dropped", logging.KeyReason, reason.String())
}

// OnMessageSent logs a delivered outbound message.
func (a *App) OnMessageSent(appmsg.Dict) {
	a.log.Info("outbox send success")
}

// OnMessageFailed logs an outbound message that could not be delivered.
func (a *App) OnMessageFailed(_ appmsg.Dict, reason appmsg.Result) {
	a.log.Error("outbox send failed", logging.KeyReason, reason.String())
}

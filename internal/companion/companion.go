// Package companion is the process on the far side of the message channel.
// It answers weather requests from the face by querying a weather API and
// delivering a reply dictionary.
package companion

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/weatherface/internal/appmsg"
	"github.com/dm/weatherface/internal/client"
	"github.com/dm/weatherface/internal/logging"
	"github.com/dm/weatherface/internal/model"
)

// DefaultFetchTimeout bounds a single weather lookup.
const DefaultFetchTimeout = 15 * time.Second

// Config controls the companion's behaviour.
type Config struct {
	FetchOnReady bool          // push one reading as soon as the companion starts
	FetchTimeout time.Duration // per-lookup timeout
}

// Link is the companion's end of the message channel.
type Link interface {
	Requests() <-chan appmsg.Envelope
	Ack(env appmsg.Envelope)
	Deliver(d appmsg.Dict) appmsg.Result
}

// Service serves weather requests arriving on a Link.
type Service struct {
	cfg    Config
	link   Link
	client client.WeatherClient
	log    *slog.Logger
}

// New creates a Service.
func New(cfg Config, link Link, c client.WeatherClient) *Service {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	return &Service{
		cfg:    cfg,
		link:   link,
		client: c,
		log:    logging.With("component", "companion"),
	}
}

// Reply builds the inbound dictionary for a reading.
func Reply(r model.WeatherReading) appmsg.Dict {
	return appmsg.NewDict(
		appmsg.Int32(appmsg.KeyTemperature, int32(r.Temperature)),
		appmsg.CString(appmsg.KeyConditions, r.Conditions),
	)
}

// Run serves requests until ctx is cancelled. The ready fetch runs alongside
// the request loop so an early request is not held up behind it.
func (s *Service) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.cfg.FetchOnReady {
		g.Go(func() error {
			s.fetchAndDeliver(gctx)
			return nil
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case env := <-s.link.Requests():
				s.handle(gctx, env)
			}
		}
	})

	return g.Wait()
}

// handle acknowledges env and, when it asks for weather, replies with a
// fresh reading. Other payloads are acknowledged and ignored.
func (s *Service) handle(ctx context.Context, env appmsg.Envelope) {
	s.link.Ack(env)
	if _, ok := env.Dict.Find(appmsg.KeyRequestWeather); !ok {
		s.log.Warn("ignoring unknown request", logging.KeyEnvelope, env.ID)
		return
	}
	s.fetchAndDeliver(ctx)
}

// fetchAndDeliver looks up the weather and delivers it. Lookup failures are
// logged; the face keeps showing its previous value.
func (s *Service) fetchAndDeliver(ctx context.Context) {
	fctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	reading, err := s.client.GetCurrentWeather(fctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Error("weather lookup failed", logging.KeyError, err)
		}
		return
	}
	if res := s.link.Deliver(Reply(*reading)); res != appmsg.ResultOK {
		s.log.Error("reply not delivered", logging.KeyReason, res.String())
		return
	}
	s.log.Info("weather delivered",
		logging.KeyTemp, reading.Temperature,
		logging.KeyCondition, reading.Conditions)
}

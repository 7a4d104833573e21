package companion

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dm/weatherface/internal/model"
)

var errMockFailure = errors.New("mock failure")

// MockWeatherClient implements client.WeatherClient for testing.
type MockWeatherClient struct {
	CurrentFn func(ctx context.Context) (*model.WeatherReading, error)
	calls     atomic.Int32
}

func (m *MockWeatherClient) GetCurrentWeather(ctx context.Context) (*model.WeatherReading, error) {
	m.calls.Add(1)
	if m.CurrentFn != nil {
		return m.CurrentFn(ctx)
	}
	return &model.WeatherReading{Temperature: 70, Conditions: "Clear"}, nil
}

func (m *MockWeatherClient) BaseURL() string { return "http://mock" }

func (m *MockWeatherClient) Calls() int { return int(m.calls.Load()) }

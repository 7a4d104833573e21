package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/dm/weatherface/internal/model"
)

const endpointForecast = "/v1/forecast"

// forecastPath builds the query for the configured location and unit.
func (c *DefaultClient) forecastPath() string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.config.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(c.config.Longitude, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code")
	if c.config.Unit == "F" {
		q.Set("temperature_unit", "fahrenheit")
	} else {
		q.Set("temperature_unit", "celsius")
	}
	return endpointForecast + "?" + q.Encode()
}

// GetCurrentWeather fetches the current temperature and conditions.
// The temperature is rounded to whole degrees.
func (c *DefaultClient) GetCurrentWeather(ctx context.Context) (*model.WeatherReading, error) {
	body, err := c.doGet(ctx, c.forecastPath())
	if err != nil {
		return nil, fmt.Errorf("GetCurrentWeather: %w", err)
	}

	var result ForecastResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetCurrentWeather decode: %w", err)
	}
	if result.Current == nil {
		return nil, fmt.Errorf("GetCurrentWeather: response has no current conditions")
	}

	return &model.WeatherReading{
		Temperature: int(math.Round(result.Current.Temperature)),
		Conditions:  ConditionsLabel(result.Current.WeatherCode),
	}, nil
}

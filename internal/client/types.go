package client

// ForecastResponse is the subset of /v1/forecast the companion reads.
type ForecastResponse struct {
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	CurrentUnits CurrentUnits       `json:"current_units"`
	Current      *CurrentConditions `json:"current,omitempty"`
}

// CurrentUnits names the unit of each current field.
type CurrentUnits struct {
	Temperature string `json:"temperature_2m"`
}

// CurrentConditions holds the current-hour observation.
type CurrentConditions struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature_2m"`
	WeatherCode int     `json:"weather_code"`
}

package meteo

import (
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Config holds configuration options for the weather Manager
type Config struct {
	BaseURL      string
	Latitude     float64
	Longitude    float64
	Timezone     string
	PollInterval time.Duration
}

// ForecastURL builds the forecast request URL. The query asks for 15-minute
// resolution readings plus hourly surface pressure, one past interval and a
// short forecast window around the current time.
func (config Config) ForecastURL() string {
	base := config.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(config.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(config.Longitude, 'f', -1, 64))
	q.Set("minutely_15", "temperature_2m,precipitation,weather_code,wind_speed_10m,wind_direction_10m")
	q.Set("hourly", "surface_pressure")
	q.Set("timezone", config.Timezone)
	q.Set("past_minutely_15", "1")
	q.Set("forecast_days", "1")
	q.Set("forecast_minutely_15", "4")

	return base + "?" + q.Encode()
}

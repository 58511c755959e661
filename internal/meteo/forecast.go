package meteo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// forecastTimeLayout is the timestamp format used by the forecast API. Times
// carry no offset; they are expressed in the requested timezone.
const forecastTimeLayout = "2006-01-02T15:04"

var ErrNoReadings = errors.New("forecast contains no readings")

// Forecast is the decoded forecast payload. Each block holds parallel arrays
// keyed by timestamp.
type Forecast struct {
	Minutely MinutelyBlock `json:"minutely_15"`
	Hourly   HourlyBlock   `json:"hourly"`
}

// MinutelyBlock holds readings at 15-minute resolution
type MinutelyBlock struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Precipitation []float64 `json:"precipitation"`
	WeatherCode   []int     `json:"weather_code"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
	WindDirection []float64 `json:"wind_direction_10m"`
}

// HourlyBlock holds readings at hourly resolution
type HourlyBlock struct {
	Time            []string  `json:"time"`
	SurfacePressure []float64 `json:"surface_pressure"`
}

// Observation is a single normalized reading derived from a forecast
type Observation struct {
	Temperature   float64
	WindSpeed     float64
	WindDirection string
	Precipitation float64
	Weather       string
	Pressure      float64
	ObservedAt    time.Time
}

// CurrentObservation derives the reading closest to now from the forecast:
// the 15-minute record nearest the current time merged with the surface
// pressure for the current hour.
func (f *Forecast) CurrentObservation(now time.Time, loc *time.Location) (Observation, error) {
	if err := f.validate(); err != nil {
		return Observation{}, err
	}

	minutelyIdx, err := closestTimeIndex(f.Minutely.Time, now, loc)
	if err != nil {
		return Observation{}, fmt.Errorf("error locating current 15-minute reading: %w", err)
	}

	pressure, err := f.currentPressure(now, loc)
	if err != nil {
		return Observation{}, err
	}

	observedAt, err := time.ParseInLocation(forecastTimeLayout, f.Minutely.Time[minutelyIdx], loc)
	if err != nil {
		return Observation{}, fmt.Errorf("error parsing reading timestamp: %w", err)
	}

	return Observation{
		Temperature:   f.Minutely.Temperature[minutelyIdx],
		WindSpeed:     f.Minutely.WindSpeed[minutelyIdx],
		WindDirection: CompassDirection(f.Minutely.WindDirection[minutelyIdx]),
		Precipitation: f.Minutely.Precipitation[minutelyIdx],
		Weather:       WeatherDescription(f.Minutely.WeatherCode[minutelyIdx]),
		Pressure:      PressureToMmHg(pressure),
		ObservedAt:    observedAt,
	}, nil
}

// currentPressure picks the hourly pressure matching the current hour,
// falling back to the closest hourly timestamp.
func (f *Forecast) currentPressure(now time.Time, loc *time.Location) (float64, error) {
	for i, raw := range f.Hourly.Time {
		t, err := time.ParseInLocation(forecastTimeLayout, raw, loc)
		if err != nil {
			return 0, fmt.Errorf("error parsing hourly timestamp %q: %w", raw, err)
		}
		if t.Year() == now.Year() && t.YearDay() == now.YearDay() && t.Hour() == now.Hour() {
			return f.Hourly.SurfacePressure[i], nil
		}
	}

	idx, err := closestTimeIndex(f.Hourly.Time, now, loc)
	if err != nil {
		return 0, fmt.Errorf("error locating current pressure reading: %w", err)
	}
	return f.Hourly.SurfacePressure[idx], nil
}

func (f *Forecast) validate() error {
	m := f.Minutely
	if len(m.Time) == 0 || len(f.Hourly.Time) == 0 {
		return ErrNoReadings
	}
	if len(m.Temperature) != len(m.Time) ||
		len(m.Precipitation) != len(m.Time) ||
		len(m.WeatherCode) != len(m.Time) ||
		len(m.WindSpeed) != len(m.Time) ||
		len(m.WindDirection) != len(m.Time) {
		return fmt.Errorf("minutely_15 block has mismatched array lengths")
	}
	if len(f.Hourly.SurfacePressure) != len(f.Hourly.Time) {
		return fmt.Errorf("hourly block has mismatched array lengths")
	}
	return nil
}

// closestTimeIndex returns the index of the timestamp with the smallest
// absolute distance from now.
func closestTimeIndex(timestamps []string, now time.Time, loc *time.Location) (int, error) {
	bestIdx := -1
	bestDelta := time.Duration(math.MaxInt64)

	for i, raw := range timestamps {
		t, err := time.ParseInLocation(forecastTimeLayout, raw, loc)
		if err != nil {
			return 0, fmt.Errorf("error parsing timestamp %q: %w", raw, err)
		}

		delta := now.Sub(t)
		if delta < 0 {
			delta = -delta
		}
		if delta < bestDelta {
			bestDelta = delta
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return 0, ErrNoReadings
	}
	return bestIdx, nil
}

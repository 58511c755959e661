package meteo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testForecast() *Forecast {
	return &Forecast{
		Minutely: MinutelyBlock{
			Time:          []string{"2026-08-27T12:00", "2026-08-27T12:15", "2026-08-27T12:30", "2026-08-27T12:45"},
			Temperature:   []float64{20.0, 20.5, 21.0, 21.5},
			Precipitation: []float64{0, 0, 0.2, 0.4},
			WeatherCode:   []int{0, 1, 2, 3},
			WindSpeed:     []float64{3.0, 3.5, 4.0, 4.5},
			WindDirection: []float64{10, 100, 190, 280},
		},
		Hourly: HourlyBlock{
			Time:            []string{"2026-08-27T11:00", "2026-08-27T12:00", "2026-08-27T13:00"},
			SurfacePressure: []float64{990.0, 993.6, 995.0},
		},
	}
}

func TestCurrentObservationPicksClosestReading(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 18, 0, 0, time.UTC)

	obs, err := testForecast().CurrentObservation(now, time.UTC)
	require.NoError(t, err)

	// 12:18 is closest to the 12:15 reading.
	assert.Equal(t, 20.5, obs.Temperature)
	assert.Equal(t, 3.5, obs.WindSpeed)
	assert.Equal(t, "East", obs.WindDirection)
	assert.Equal(t, float64(0), obs.Precipitation)
	assert.Equal(t, "Mainly clear", obs.Weather)
	assert.Equal(t, time.Date(2026, 8, 27, 12, 15, 0, 0, time.UTC), obs.ObservedAt)

	// Pressure comes from the 12:00 hourly entry, converted to mmHg.
	assert.Equal(t, float64(745), obs.Pressure)
}

func TestCurrentObservationFallsBackToClosestHour(t *testing.T) {
	forecast := testForecast()
	forecast.Hourly = HourlyBlock{
		Time:            []string{"2026-08-27T10:00", "2026-08-27T11:00"},
		SurfacePressure: []float64{980.0, 990.0},
	}

	now := time.Date(2026, 8, 27, 12, 18, 0, 0, time.UTC)
	obs, err := forecast.CurrentObservation(now, time.UTC)
	require.NoError(t, err)

	// No entry for hour 12; the 11:00 reading is closest.
	assert.Equal(t, PressureToMmHg(990.0), obs.Pressure)
}

func TestCurrentObservationEmptyForecast(t *testing.T) {
	var forecast Forecast
	_, err := forecast.CurrentObservation(time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrNoReadings)
}

func TestCurrentObservationMismatchedArrays(t *testing.T) {
	forecast := testForecast()
	forecast.Minutely.Temperature = forecast.Minutely.Temperature[:2]

	_, err := forecast.CurrentObservation(time.Now(), time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched array lengths")
}

func TestCurrentObservationBadTimestamp(t *testing.T) {
	forecast := testForecast()
	forecast.Minutely.Time[1] = "not-a-time"

	_, err := forecast.CurrentObservation(time.Now(), time.UTC)
	require.Error(t, err)
}

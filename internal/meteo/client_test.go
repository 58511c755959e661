package meteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastJSON(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(testForecast())
	require.NoError(t, err)
	return b
}

func newForecastClient(serverURL string) *Client {
	client := NewClient(Config{Timezone: "UTC"})
	client.url = serverURL
	return client
}

func TestFetchDecodesForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(forecastJSON(t))
	}))
	defer server.Close()

	forecast, err := newForecastClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, forecast.Minutely.Time, 4)
	assert.Equal(t, 20.5, forecast.Minutely.Temperature[1])
	require.Len(t, forecast.Hourly.SurfacePressure, 3)
	assert.Equal(t, 993.6, forecast.Hourly.SurfacePressure[1])
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(forecastJSON(t))
	}))
	defer server.Close()

	forecast, err := newForecastClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, forecast)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newForecastClient(server.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchDoesNotRetryMalformedPayload(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	_, err := newForecastClient(server.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing forecast payload")
	assert.Equal(t, int32(1), calls.Load())
}

func TestForecastURL(t *testing.T) {
	config := Config{
		Latitude:  55.6878,
		Longitude: 37.3684,
		Timezone:  "Europe/Moscow",
	}

	u := config.ForecastURL()
	assert.Contains(t, u, DefaultBaseURL)
	assert.Contains(t, u, "latitude=55.6878")
	assert.Contains(t, u, "longitude=37.3684")
	assert.Contains(t, u, "hourly=surface_pressure")
	assert.Contains(t, u, "timezone=Europe%2FMoscow")
	assert.Contains(t, u, "minutely_15=temperature_2m%2Cprecipitation%2Cweather_code%2Cwind_speed_10m%2Cwind_direction_10m")
}

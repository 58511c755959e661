package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"meteolog.dev/internal/app"
	"meteolog.dev/internal/appconf"
	"meteolog.dev/internal/export"
	"meteolog.dev/internal/meteo"
	"meteolog.dev/internal/models"
	"meteolog.dev/weatherdb"
)

const testForecastJSON = `{
	"minutely_15": {
		"time": ["2026-08-27T12:00", "2026-08-27T12:15", "2026-08-27T12:30", "2026-08-27T12:45"],
		"temperature_2m": [20.0, 20.5, 21.0, 21.5],
		"precipitation": [0, 0, 0.2, 0.4],
		"weather_code": [0, 1, 2, 3],
		"wind_speed_10m": [3.0, 3.5, 4.0, 4.5],
		"wind_direction_10m": [10, 100, 190, 280]
	},
	"hourly": {
		"time": ["2026-08-27T11:00", "2026-08-27T12:00", "2026-08-27T13:00"],
		"surface_pressure": [990.0, 993.6, 995.0]
	}
}`

// createTestApp creates an application instance with a weather manager backed
// by a fake forecast server and an in-memory database.
func createTestApp(t *testing.T) *app.Application {
	t.Helper()

	forecastServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testForecastJSON))
	}))
	t.Cleanup(forecastServer.Close)

	db, err := weatherdb.NewClient(weatherdb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	manager, err := meteo.InitManager(meteo.Config{
		BaseURL:      forecastServer.URL,
		Timezone:     "UTC",
		PollInterval: time.Hour,
	}, db)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &app.Application{
		Config: app.Config{
			Env:       "test",
			APIKeys:   []string{"TEST"},
			RateLimit: 1000,
		},
		Logger:         logger,
		WeatherManager: manager,
		Exporter:       export.NewService(t.TempDir(), manager.Location(), logger),
	}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*app.Application, *http.Response, models.ResponseModel) {
	testApp := createTestApp(t)
	resp, model := serveAppAndRetrieveEndpoint(t, testApp, endpoint)
	return testApp, resp, model
}

func serveAppAndRetrieveEndpoint(t *testing.T, testApp *app.Application, endpoint string) (*http.Response, models.ResponseModel) {
	api := NewRestAPI(testApp)
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func httptestServer(t *testing.T, api *RestAPI) *httptest.Server {
	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)
	return server
}

func servePostAndRetrieveEndpoint(t *testing.T, testApp *app.Application, endpoint string) (*http.Response, models.ResponseModel) {
	api := NewRestAPI(testApp)
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Post(server.URL+endpoint, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"meteolog.dev/internal/logging"
)

const fetchMaxTries = 3

// Client fetches forecast data from the weather API
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a forecast client for the configured location
func NewClient(config Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        config.ForecastURL(),
	}
}

// Fetch downloads and decodes the current forecast. Transient failures are
// retried with exponential backoff; malformed payloads and client errors are
// not retried.
func (c *Client) Fetch(ctx context.Context) (*Forecast, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "meteo_client"))

	operation := func() (*Forecast, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer logging.SafeCloseWithLogging(resp.Body, logger, "http_response_body")

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("unexpected status %d from forecast endpoint", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return nil, backoff.Permanent(statusErr)
			}
			return nil, statusErr
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		var forecast Forecast
		if err := json.Unmarshal(b, &forecast); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("error parsing forecast payload: %w", err))
		}
		return &forecast, nil
	}

	forecast, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(fetchMaxTries),
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching forecast: %w", err)
	}
	return forecast, nil
}

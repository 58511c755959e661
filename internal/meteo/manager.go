package meteo

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"meteolog.dev/internal/logging"
	"meteolog.dev/weatherdb"
)

const collectTimeout = 15 * time.Second

// Manager owns the forecast client and the observation store. It collects an
// observation at startup and then on a fixed interval until shut down.
type Manager struct {
	client       *Client
	WeatherDB    *weatherdb.Client
	config       Config
	location     *time.Location
	latest       weatherdb.Observation
	hasLatest    bool
	latestMutex  sync.RWMutex
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager creates a Manager, performs the initial collection and starts
// the periodic collector.
func InitManager(config Config, db *weatherdb.Client) (*Manager, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("error loading timezone %q: %w", config.Timezone, err)
	}

	if config.PollInterval <= 0 {
		config.PollInterval = 3 * time.Minute
	}

	manager := &Manager{
		client:       NewClient(config),
		WeatherDB:    db,
		config:       config,
		location:     location,
		shutdownChan: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel() // Ensure the context is canceled when done
	if err := manager.Collect(ctx); err != nil {
		return nil, fmt.Errorf("error collecting initial observation: %w", err)
	}

	manager.wg.Add(1)
	go manager.collectPeriodically()

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutine
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

// Collect fetches the forecast, derives the current observation, stores it
// and updates the in-memory cache.
func (manager *Manager) Collect(ctx context.Context) error {
	forecast, err := manager.client.Fetch(ctx)
	if err != nil {
		return err
	}

	now := time.Now().In(manager.location)
	obs, err := forecast.CurrentObservation(now, manager.location)
	if err != nil {
		return err
	}

	record := weatherdb.Observation{
		Temperature:   obs.Temperature,
		WindSpeed:     obs.WindSpeed,
		WindDirection: obs.WindDirection,
		Precipitation: obs.Precipitation,
		Weather:       obs.Weather,
		Pressure:      obs.Pressure,
		ObservedAt:    obs.ObservedAt,
	}

	id, err := manager.WeatherDB.InsertObservation(ctx, record)
	if err != nil {
		return err
	}
	record.ID = id
	record.CreatedAt = time.Now().UTC()

	manager.latestMutex.Lock()
	manager.latest = record
	manager.hasLatest = true
	manager.latestMutex.Unlock()

	return nil
}

// LatestObservation returns the most recently collected observation
func (manager *Manager) LatestObservation() (weatherdb.Observation, bool) {
	manager.latestMutex.RLock()
	defer manager.latestMutex.RUnlock()
	return manager.latest, manager.hasLatest
}

// Location returns the configured local timezone
func (manager *Manager) Location() *time.Location {
	return manager.location
}

func (manager *Manager) collectPeriodically() {
	defer manager.wg.Done()

	logger := slog.Default().With(slog.String("component", "weather_collector"))

	ticker := time.NewTicker(manager.config.PollInterval)
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
			ctx = logging.WithLogger(ctx, logger)

			logging.LogOperation(logger, "collecting_weather_observation")
			if err := manager.Collect(ctx); err != nil {
				logging.LogError(logger, "failed to collect weather observation", err)
			}
			cancel() // Ensure the context is canceled when done
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_weather_collector")
			return
		}
	}
}

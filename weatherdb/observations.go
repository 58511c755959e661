package weatherdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrObservationNotFound is returned when an observation ID does not exist.
var ErrObservationNotFound = errors.New("observation not found")

// Observation represents a single normalized weather reading
type Observation struct {
	ID            int64
	Temperature   float64 // temperature, °C
	WindSpeed     float64 // wind_speed, m/s
	WindDirection string  // wind_direction, compass point
	Precipitation float64 // precipitation, mm
	Weather       string  // weather, human-readable condition
	Pressure      float64 // pressure, mmHg
	ObservedAt    time.Time
	CreatedAt     time.Time
}

// Summary aggregates stored observations over a time window
type Summary struct {
	Count          int64
	MinTemperature float64
	MaxTemperature float64
	AvgTemperature float64
	MinPressure    float64
	MaxPressure    float64
	AvgPressure    float64
}

const observationColumns = `id, temperature, wind_speed, wind_direction,
		precipitation, weather, pressure, observed_at, created_at`

// InsertObservation adds a new observation and returns its row ID
func (c *Client) InsertObservation(ctx context.Context, obs Observation) (int64, error) {
	createdAt := obs.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := c.DB.ExecContext(ctx, `
		INSERT INTO observations (
			temperature, wind_speed, wind_direction,
			precipitation, weather, pressure, observed_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		obs.Temperature, obs.WindSpeed, obs.WindDirection,
		obs.Precipitation, obs.Weather, obs.Pressure,
		obs.ObservedAt.UTC().Format(time.RFC3339),
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("error inserting observation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading inserted observation id: %w", err)
	}
	return id, nil
}

// GetObservation retrieves a single observation by its row ID
func (c *Client) GetObservation(ctx context.Context, id int64) (Observation, error) {
	row := c.DB.QueryRowContext(ctx,
		`SELECT `+observationColumns+` FROM observations WHERE id = ?`, id)

	obs, err := scanObservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Observation{}, ErrObservationNotFound
	}
	return obs, err
}

// LatestObservations retrieves the most recent observations, newest first
func (c *Client) LatestObservations(ctx context.Context, limit int) ([]Observation, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT `+observationColumns+` FROM observations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying latest observations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return collectObservations(rows)
}

// ObservationsSince retrieves observations recorded at or after the given time
func (c *Client) ObservationsSince(ctx context.Context, since time.Time) ([]Observation, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT `+observationColumns+` FROM observations WHERE created_at >= ? ORDER BY id`,
		since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("error querying observations since %s: %w", since, err)
	}
	defer rows.Close() // nolint:errcheck

	return collectObservations(rows)
}

// CountObservations returns the total number of stored observations
func (c *Client) CountObservations(ctx context.Context) (int64, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting observations: %w", err)
	}
	return count, nil
}

// Summarize aggregates observations recorded at or after the given time
func (c *Client) Summarize(ctx context.Context, since time.Time) (Summary, error) {
	var summary Summary
	err := c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(MIN(temperature), 0), COALESCE(MAX(temperature), 0), COALESCE(AVG(temperature), 0),
			COALESCE(MIN(pressure), 0), COALESCE(MAX(pressure), 0), COALESCE(AVG(pressure), 0)
		FROM observations WHERE created_at >= ?`,
		since.UTC().Format(time.RFC3339),
	).Scan(
		&summary.Count,
		&summary.MinTemperature, &summary.MaxTemperature, &summary.AvgTemperature,
		&summary.MinPressure, &summary.MaxPressure, &summary.AvgPressure,
	)
	if err != nil {
		return Summary{}, fmt.Errorf("error summarizing observations: %w", err)
	}
	return summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObservation(row rowScanner) (Observation, error) {
	var obs Observation
	var observedAt, createdAt string

	err := row.Scan(&obs.ID, &obs.Temperature, &obs.WindSpeed, &obs.WindDirection,
		&obs.Precipitation, &obs.Weather, &obs.Pressure, &observedAt, &createdAt)
	if err != nil {
		return Observation{}, err
	}

	obs.ObservedAt, err = time.Parse(time.RFC3339, observedAt)
	if err != nil {
		return Observation{}, fmt.Errorf("error parsing observed_at %q: %w", observedAt, err)
	}
	obs.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Observation{}, fmt.Errorf("error parsing created_at %q: %w", createdAt, err)
	}
	return obs, nil
}

func collectObservations(rows *sql.Rows) ([]Observation, error) {
	var observations []Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return observations, nil
}

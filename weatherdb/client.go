package weatherdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"meteolog.dev/internal/appconf"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

// ErrTestDBOnDisk is returned when a test environment points the database at
// a file instead of :memory:.
var ErrTestDBOnDisk = errors.New("test environment must use an in-memory database")

// Client is the main entry point for the observation store
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient opens the SQLite database and applies the schema
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("error creating observation database: %w", err)
	}

	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// Reset drops all stored observations. Used by the -reset flag at startup.
func (c *Client) Reset(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, `DELETE FROM observations;`); err != nil {
		return fmt.Errorf("error resetting observations: %w", err)
	}
	return nil
}

func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, ErrTestDBOnDisk
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	ctx := context.Background()
	if err := performDatabaseMigration(ctx, db); err != nil {
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

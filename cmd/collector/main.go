package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"meteolog.dev/internal/app"
	"meteolog.dev/internal/export"
	"meteolog.dev/internal/logging"
	"meteolog.dev/internal/meteo"
	"meteolog.dev/internal/restapi"
	"meteolog.dev/weatherdb"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Command-line flags override environment configuration.
	var apiKeysFlag string
	flag.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "", "Comma separated API keys")
	flag.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite observations database")
	flag.Float64Var(&cfg.Latitude, "latitude", cfg.Latitude, "Forecast latitude")
	flag.Float64Var(&cfg.Longitude, "longitude", cfg.Longitude, "Forecast longitude")
	flag.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "Forecast timezone")
	flag.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "Interval between forecast collections")
	flag.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "Directory for spreadsheet exports")
	reset := flag.Bool("reset", false, "Delete stored observations at startup")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.APIKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(cfg.APIKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(logger)

	db, err := weatherdb.NewClient(weatherdb.NewConfig(cfg.DBPath, cfg.Environment(), cfg.Env == "development"))
	if err != nil {
		logger.Error("failed to open observation database", "error", err)
		os.Exit(1)
	}

	if *reset {
		if err := db.Reset(context.Background()); err != nil {
			logger.Error("failed to reset observation database", "error", err)
			os.Exit(1)
		}
		logger.Info("observation database reset")
	}

	manager, err := meteo.InitManager(meteo.Config{
		Latitude:     cfg.Latitude,
		Longitude:    cfg.Longitude,
		Timezone:     cfg.Timezone,
		PollInterval: cfg.PollInterval,
	}, db)
	if err != nil {
		logger.Error("failed to initialize weather manager", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:         cfg,
		Logger:         logger,
		WeatherManager: manager,
		Exporter:       export.NewService(cfg.ExportDir, manager.Location(), logger),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	manager.Shutdown()
	if err := db.Close(); err != nil {
		logger.Error("error closing observation database", "error", err)
	}
	logger.Info("server stopped")
}

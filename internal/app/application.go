package app

import (
	"log/slog"

	"meteolog.dev/internal/export"
	"meteolog.dev/internal/meteo"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config         Config
	Logger         *slog.Logger
	WeatherManager *meteo.Manager
	Exporter       *export.Service
}

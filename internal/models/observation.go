package models

import (
	"time"

	"meteolog.dev/weatherdb"
)

// ObservationModel is the API representation of a stored weather observation
type ObservationModel struct {
	ID                 int64   `json:"id"`
	Temperature        float64 `json:"temperature"`
	WindSpeed          float64 `json:"windSpeed"`
	WindDirection      string  `json:"windDirection"`
	Precipitation      float64 `json:"precipitation"`
	Weather            string  `json:"weather"`
	Pressure           float64 `json:"pressure"`
	ObservedAt         int64   `json:"observedAt"`
	ReadableObservedAt string  `json:"readableObservedAt"`
	CreatedAt          int64   `json:"createdAt"`
}

// NewObservationModel creates an ObservationModel from a stored observation
func NewObservationModel(obs weatherdb.Observation) ObservationModel {
	return ObservationModel{
		ID:                 obs.ID,
		Temperature:        obs.Temperature,
		WindSpeed:          obs.WindSpeed,
		WindDirection:      obs.WindDirection,
		Precipitation:      obs.Precipitation,
		Weather:            obs.Weather,
		Pressure:           obs.Pressure,
		ObservedAt:         obs.ObservedAt.UnixMilli(),
		ReadableObservedAt: obs.ObservedAt.Format(time.RFC3339),
		CreatedAt:          obs.CreatedAt.UnixMilli(),
	}
}

// NewObservationListModel converts stored observations to API models
func NewObservationListModel(observations []weatherdb.Observation) []ObservationModel {
	list := make([]ObservationModel, 0, len(observations))
	for _, obs := range observations {
		list = append(list, NewObservationModel(obs))
	}
	return list
}

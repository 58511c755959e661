package models

import "meteolog.dev/weatherdb"

// SummaryModel aggregates stored observations for the summary endpoint
type SummaryModel struct {
	Count          int64   `json:"count"`
	MinTemperature float64 `json:"minTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
	AvgTemperature float64 `json:"avgTemperature"`
	MinPressure    float64 `json:"minPressure"`
	MaxPressure    float64 `json:"maxPressure"`
	AvgPressure    float64 `json:"avgPressure"`
	WindowHours    int     `json:"windowHours"`
}

// NewSummaryModel creates a SummaryModel from an aggregate query result
func NewSummaryModel(summary weatherdb.Summary, windowHours int) SummaryModel {
	return SummaryModel{
		Count:          summary.Count,
		MinTemperature: summary.MinTemperature,
		MaxTemperature: summary.MaxTemperature,
		AvgTemperature: summary.AvgTemperature,
		MinPressure:    summary.MinPressure,
		MaxPressure:    summary.MaxPressure,
		AvgPressure:    summary.AvgPressure,
		WindowHours:    windowHours,
	}
}

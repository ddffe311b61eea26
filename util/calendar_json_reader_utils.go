package util

import (
	"encoding/json"
	"fmt"
	"os"

	"chronos/models"
	"chronos/models/forecast"
)

// ReadEventsFromJSON loads a slice of events from a JSON fixture on disk.
func ReadEventsFromJSON(filePath string) ([]models.Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}
	return events, nil
}

// ReadSchedulesFromJSON loads a slice of schedules from a JSON fixture on disk.
func ReadSchedulesFromJSON(filePath string) ([]models.Schedule, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var schedules []models.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedules: %w", err)
	}
	return schedules, nil
}

// ReadForecastResponseFromJSON loads a forecast feed from a JSON fixture on disk.
func ReadForecastResponseFromJSON(filePath string) (*forecast.Response, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp forecast.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast response: %w", err)
	}
	return &resp, nil
}

// ReadCityFromJSON loads a city from a JSON fixture on disk.
func ReadCityFromJSON(filePath string) (*models.City, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var city models.City
	if err := json.Unmarshal(data, &city); err != nil {
		return nil, fmt.Errorf("failed to unmarshal city: %w", err)
	}
	return &city, nil
}

package services

import (
	"errors"

	"chronos/models"
	"chronos/models/forecast"
)

// stubAPI is the in-memory ChronosAPI used across the service tests.
type stubAPI struct {
	events    []models.Event
	schedules []models.Schedule
	forecast  *forecast.Response
	city      *models.City

	eventsErr    error
	schedulesErr error
	forecastErr  error

	forecastCalls int
	created       []models.Event
	updated       []models.Event
	deletedIDs    []int
	nextID        int
	token         string
}

func (s *stubAPI) Login(username, password string) (*models.LoginResponse, error) {
	return &models.LoginResponse{Token: "stub-token", UserID: 7}, nil
}

func (s *stubAPI) Register(username, email, password string) error { return nil }

func (s *stubAPI) SetToken(token string) { s.token = token }

func (s *stubAPI) GetEvents() ([]models.Event, error) {
	if s.eventsErr != nil {
		return nil, s.eventsErr
	}
	return s.events, nil
}

func (s *stubAPI) GetEvent(id int) (*models.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, errors.New("event not found")
}

func (s *stubAPI) CreateEvent(event models.Event) (*models.Event, error) {
	s.nextID++
	event.ID = s.nextID
	s.created = append(s.created, event)
	return &event, nil
}

func (s *stubAPI) UpdateEvent(id int, event models.Event) (*models.Event, error) {
	event.ID = id
	s.updated = append(s.updated, event)
	return &event, nil
}

func (s *stubAPI) DeleteEvent(id int) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubAPI) GetSchedules() ([]models.Schedule, error) {
	if s.schedulesErr != nil {
		return nil, s.schedulesErr
	}
	return s.schedules, nil
}

func (s *stubAPI) GetSchedulesByDay(day string) ([]models.Schedule, error) {
	if s.schedulesErr != nil {
		return nil, s.schedulesErr
	}
	var out []models.Schedule
	for _, schedule := range s.schedules {
		if schedule.Day == day {
			out = append(out, schedule)
		}
	}
	return out, nil
}

func (s *stubAPI) GetSchedule(id int) (*models.Schedule, error) {
	for _, schedule := range s.schedules {
		if schedule.ID == id {
			return &schedule, nil
		}
	}
	return nil, errors.New("schedule not found")
}

func (s *stubAPI) CreateSchedule(schedule models.Schedule) (*models.Schedule, error) {
	s.nextID++
	schedule.ID = s.nextID
	s.schedules = append(s.schedules, schedule)
	return &schedule, nil
}

func (s *stubAPI) UpdateSchedule(id int, schedule models.Schedule) (*models.Schedule, error) {
	schedule.ID = id
	return &schedule, nil
}

func (s *stubAPI) DeleteSchedule(id int) error { return nil }

func (s *stubAPI) GetWeather(lat, lon float64) (*models.City, error) {
	if s.city == nil {
		return nil, errors.New("no city")
	}
	return s.city, nil
}

func (s *stubAPI) GetForecast(lat, lon float64) (*forecast.Response, error) {
	s.forecastCalls++
	if s.forecastErr != nil {
		return nil, s.forecastErr
	}
	if s.forecast == nil {
		return &forecast.Response{}, nil
	}
	return s.forecast, nil
}

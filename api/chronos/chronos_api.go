package chronos

import (
	"chronos/models"
	"chronos/models/forecast"
)

// ChronosAPI defines the interface for interacting with the Chronos backend
type ChronosAPI interface {
	Login(username, password string) (*models.LoginResponse, error)
	Register(username, email, password string) error
	SetToken(token string)

	GetEvents() ([]models.Event, error)
	GetEvent(id int) (*models.Event, error)
	CreateEvent(event models.Event) (*models.Event, error)
	UpdateEvent(id int, event models.Event) (*models.Event, error)
	DeleteEvent(id int) error

	GetSchedules() ([]models.Schedule, error)
	GetSchedulesByDay(day string) ([]models.Schedule, error)
	GetSchedule(id int) (*models.Schedule, error)
	CreateSchedule(schedule models.Schedule) (*models.Schedule, error)
	UpdateSchedule(id int, schedule models.Schedule) (*models.Schedule, error)
	DeleteSchedule(id int) error

	GetWeather(lat, lon float64) (*models.City, error)
	GetForecast(lat, lon float64) (*forecast.Response, error)
}

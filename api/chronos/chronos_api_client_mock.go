package chronos

import (
	"fmt"

	"chronos/models"
	"chronos/models/forecast"
	"chronos/util"
)

const EVENTS_RESPONSE_PATH = "./resources/events.json"
const SCHEDULES_RESPONSE_PATH = "./resources/schedules.json"
const FORECAST_RESPONSE_PATH = "./resources/forecast_response.json"
const CITY_RESPONSE_PATH = "./resources/city.json"

// ChronosApiClientMock serves local JSON fixtures instead of calling
// the backend, so the daemon can run without network access.
type ChronosApiClientMock struct {
	token  string
	nextID int
}

// NewChronosApiClientMock creates a new instance of ChronosApiClientMock
func NewChronosApiClientMock() *ChronosApiClientMock {
	return &ChronosApiClientMock{nextID: 1000}
}

func (c *ChronosApiClientMock) Login(username, password string) (*models.LoginResponse, error) {
	return &models.LoginResponse{Token: "mock-token", UserID: 1}, nil
}

func (c *ChronosApiClientMock) Register(username, email, password string) error {
	return nil
}

func (c *ChronosApiClientMock) SetToken(token string) {
	c.token = token
}

func (c *ChronosApiClientMock) GetEvents() ([]models.Event, error) {
	events, err := util.ReadEventsFromJSON(EVENTS_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read events response from json")
		return nil, err
	}
	return events, nil
}

func (c *ChronosApiClientMock) GetEvent(id int) (*models.Event, error) {
	events, err := c.GetEvents()
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("event %d not found", id)
}

func (c *ChronosApiClientMock) CreateEvent(event models.Event) (*models.Event, error) {
	c.nextID++
	event.ID = c.nextID
	return &event, nil
}

func (c *ChronosApiClientMock) UpdateEvent(id int, event models.Event) (*models.Event, error) {
	event.ID = id
	return &event, nil
}

func (c *ChronosApiClientMock) DeleteEvent(id int) error {
	return nil
}

func (c *ChronosApiClientMock) GetSchedules() ([]models.Schedule, error) {
	schedules, err := util.ReadSchedulesFromJSON(SCHEDULES_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read schedules response from json")
		return nil, err
	}
	return schedules, nil
}

func (c *ChronosApiClientMock) GetSchedulesByDay(day string) ([]models.Schedule, error) {
	schedules, err := c.GetSchedules()
	if err != nil {
		return nil, err
	}
	var filtered []models.Schedule
	for _, schedule := range schedules {
		if schedule.Day == day {
			filtered = append(filtered, schedule)
		}
	}
	return filtered, nil
}

func (c *ChronosApiClientMock) GetSchedule(id int) (*models.Schedule, error) {
	schedules, err := c.GetSchedules()
	if err != nil {
		return nil, err
	}
	for _, schedule := range schedules {
		if schedule.ID == id {
			return &schedule, nil
		}
	}
	return nil, fmt.Errorf("schedule %d not found", id)
}

func (c *ChronosApiClientMock) CreateSchedule(schedule models.Schedule) (*models.Schedule, error) {
	c.nextID++
	schedule.ID = c.nextID
	return &schedule, nil
}

func (c *ChronosApiClientMock) UpdateSchedule(id int, schedule models.Schedule) (*models.Schedule, error) {
	schedule.ID = id
	return &schedule, nil
}

func (c *ChronosApiClientMock) DeleteSchedule(id int) error {
	return nil
}

func (c *ChronosApiClientMock) GetWeather(lat, lon float64) (*models.City, error) {
	city, err := util.ReadCityFromJSON(CITY_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read city response from json")
		return nil, err
	}
	return city, nil
}

func (c *ChronosApiClientMock) GetForecast(lat, lon float64) (*forecast.Response, error) {
	resp, err := util.ReadForecastResponseFromJSON(FORECAST_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read forecast response from json")
		return nil, err
	}
	return resp, nil
}

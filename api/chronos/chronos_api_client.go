package chronos

import (
	"fmt"
	"net/url"
	"strconv"

	"chronos/api"
	"chronos/models"
	"chronos/models/forecast"
)

// ChronosApiClient embeds the common HTTPClient
type ChronosApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewChronosApiClient creates a new instance of ChronosApiClient
func NewChronosApiClient(httpClient *api.HTTPClient) *ChronosApiClient {
	return &ChronosApiClient{
		HTTPClient: httpClient,
	}
}

// SetToken installs the bearer token used for every authenticated call.
func (c *ChronosApiClient) SetToken(token string) {
	c.SetBearerToken(token)
}

// Login exchanges credentials for a bearer token and the user id.
func (c *ChronosApiClient) Login(username, password string) (*models.LoginResponse, error) {
	var response models.LoginResponse
	body := models.LoginRequest{Username: username, Password: password}
	if err := c.Request("POST", "/auth/login", nil, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Register creates a new account. The backend returns no body worth keeping.
func (c *ChronosApiClient) Register(username, email, password string) error {
	body := models.RegisterRequest{Username: username, Email: email, Password: password}
	return c.Request("POST", "/auth/register", nil, body, nil)
}

// GetEvents retrieves all events owned by the authenticated user
func (c *ChronosApiClient) GetEvents() ([]models.Event, error) {
	var response []models.Event
	if err := c.Request("GET", "/events", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetEvent retrieves an event given its id
func (c *ChronosApiClient) GetEvent(id int) (*models.Event, error) {
	var response models.Event
	if err := c.Request("GET", "/events/"+strconv.Itoa(id), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateEvent persists a new event and returns the stored copy.
func (c *ChronosApiClient) CreateEvent(event models.Event) (*models.Event, error) {
	var response models.Event
	if err := c.Request("POST", "/events", nil, event, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateEvent replaces an event by id and returns the stored copy.
func (c *ChronosApiClient) UpdateEvent(id int, event models.Event) (*models.Event, error) {
	var response models.Event
	if err := c.Request("PUT", "/events/"+strconv.Itoa(id), nil, event, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteEvent removes an event by id.
func (c *ChronosApiClient) DeleteEvent(id int) error {
	return c.Request("DELETE", "/events/"+strconv.Itoa(id), nil, nil, nil)
}

// GetSchedules retrieves all weekly schedule entries
func (c *ChronosApiClient) GetSchedules() ([]models.Schedule, error) {
	var response []models.Schedule
	if err := c.Request("GET", "/schedules", nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetSchedulesByDay retrieves the schedule entries for a single weekday
func (c *ChronosApiClient) GetSchedulesByDay(day string) ([]models.Schedule, error) {
	var response []models.Schedule
	if err := c.Request("GET", "/schedules/day/"+url.PathEscape(day), nil, nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetSchedule retrieves a schedule entry given its id
func (c *ChronosApiClient) GetSchedule(id int) (*models.Schedule, error) {
	var response models.Schedule
	if err := c.Request("GET", "/schedules/"+strconv.Itoa(id), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// CreateSchedule persists a new schedule entry and returns the stored copy.
func (c *ChronosApiClient) CreateSchedule(schedule models.Schedule) (*models.Schedule, error) {
	var response models.Schedule
	if err := c.Request("POST", "/schedules", nil, schedule, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// UpdateSchedule replaces a schedule entry by id and returns the stored copy.
func (c *ChronosApiClient) UpdateSchedule(id int, schedule models.Schedule) (*models.Schedule, error) {
	var response models.Schedule
	if err := c.Request("PUT", "/schedules/"+strconv.Itoa(id), nil, schedule, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteSchedule removes a schedule entry by id.
func (c *ChronosApiClient) DeleteSchedule(id int) error {
	return c.Request("DELETE", "/schedules/"+strconv.Itoa(id), nil, nil, nil)
}

// GetWeather resolves the city (name and canonical coordinates) for a
// raw coordinate pair.
func (c *ChronosApiClient) GetWeather(lat, lon float64) (*models.City, error) {
	var response models.City
	if err := c.Request("GET", coordEndpoint("/weather", lat, lon), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetForecast fetches the multi-day forecast feed for a coordinate pair.
func (c *ChronosApiClient) GetForecast(lat, lon float64) (*forecast.Response, error) {
	var response forecast.Response
	if err := c.Request("GET", coordEndpoint("/forecast", lat, lon), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func coordEndpoint(path string, lat, lon float64) string {
	return fmt.Sprintf("%s?lat=%s&lon=%s", path,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))
}

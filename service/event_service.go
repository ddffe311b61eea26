package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"chronos/api/chronos"
	"chronos/models"
	"chronos/models/forecast"
	"chronos/session"
	"chronos/util"
)

// EventWithWeather pairs an event with the reduced forecast for its date.
type EventWithWeather struct {
	models.Event
	Weather forecast.Summary `json:"weather"`
}

// EventService orchestrates the one-off event calendar: fetch, filter
// to the future, enrich with weather, and keep reminders in step with
// every create, update and delete.
type EventService struct {
	chronosApi chronos.ChronosAPI
	weather    *WeatherService
	reminders  *ReminderService
	sess       *session.Session
	loc        *time.Location
	now        func() time.Time
}

// NewEventService constructs an EventService. loc nil means local time.
func NewEventService(
	chronosApi chronos.ChronosAPI,
	weather *WeatherService,
	reminders *ReminderService,
	sess *session.Session,
	loc *time.Location) *EventService {

	if loc == nil {
		loc = time.Local
	}
	return &EventService{
		chronosApi: chronosApi,
		weather:    weather,
		reminders:  reminders,
		sess:       sess,
		loc:        loc,
		now:        time.Now,
	}
}

// UpcomingEvents fetches all events and keeps those whose start
// instant is still ahead, ordered by date then start time. Events with
// unparseable date/time fields are dropped with a log line rather than
// failing the whole fetch.
func (es *EventService) UpcomingEvents() ([]models.Event, error) {
	events, err := es.chronosApi.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	now := es.now()
	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		start, err := util.CombineDateTime(event.Date, event.StartTime, es.loc)
		if err != nil {
			log.Printf("[EventService] Skipping event %d with bad date/time: %v", event.ID, err)
			continue
		}
		if start.After(now) {
			upcoming = append(upcoming, event)
		}
	}

	// ISO dates and HH:MM clocks sort correctly as strings; the stable
	// sort keeps feed order for exact ties.
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].StartTime < upcoming[j].StartTime
	})
	return upcoming, nil
}

// UpcomingWithWeather returns the upcoming events enriched with the
// per-date forecast summary. Weather failures degrade to the empty
// summary, never to an error.
func (es *EventService) UpcomingWithWeather() ([]EventWithWeather, error) {
	events, err := es.UpcomingEvents()
	if err != nil {
		return nil, err
	}

	dates := uniqueDates(events)
	summaries := es.weather.DaySummaries(dates)

	out := make([]EventWithWeather, 0, len(events))
	for _, event := range events {
		out = append(out, EventWithWeather{
			Event:   event,
			Weather: summaries[event.Date],
		})
	}
	return out, nil
}

// CreateEvent validates and persists a new event, then arms its
// reminder. The API call completes before the reminder is armed.
func (es *EventService) CreateEvent(event models.Event) (*models.Event, error) {
	if err := es.validateNotPast(event); err != nil {
		return nil, err
	}
	if es.sess.UserID != 0 {
		event.User = &models.UserRef{ID: es.sess.UserID}
	}

	created, err := es.chronosApi.CreateEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if _, err := es.reminders.ScheduleForEvent(*created); err != nil {
		log.Printf("[EventService] Reminder not armed for new event %d: %v", created.ID, err)
	}
	return created, nil
}

// UpdateEvent replaces an event and re-arms its reminder; the handle
// tracking inside the reminder service guarantees the old reminder is
// cancelled rather than stacked.
func (es *EventService) UpdateEvent(id int, event models.Event) (*models.Event, error) {
	updated, err := es.chronosApi.UpdateEvent(id, event)
	if err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}

	if _, err := es.reminders.ScheduleForEvent(*updated); err != nil {
		log.Printf("[EventService] Reminder not re-armed for event %d: %v", id, err)
	}
	return updated, nil
}

// DeleteEvent removes an event and disarms its reminder.
func (es *EventService) DeleteEvent(id int) error {
	if err := es.chronosApi.DeleteEvent(id); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	es.reminders.Cancel(id)
	return nil
}

// validateNotPast rejects events on days that already passed, matching
// the calendar screen's guard.
func (es *EventService) validateNotPast(event models.Event) error {
	if _, err := time.ParseInLocation(util.DateLayout, event.Date, es.loc); err != nil {
		return fmt.Errorf("invalid event date %q: %w", event.Date, err)
	}
	today := es.now().In(es.loc).Format(util.DateLayout)
	if event.Date < today {
		return fmt.Errorf("cannot create an event on past date %s", event.Date)
	}
	return nil
}

func uniqueDates(events []models.Event) []string {
	seen := make(map[string]struct{}, len(events))
	var dates []string
	for _, event := range events {
		if _, dup := seen[event.Date]; dup {
			continue
		}
		seen[event.Date] = struct{}{}
		dates = append(dates, event.Date)
	}
	return dates
}

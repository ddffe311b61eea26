package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// RefresherService periodically refetches events, refreshes the cached
// forecast summaries for their dates and re-arms reminders so the
// armed set survives backend edits made elsewhere.
type RefresherService struct {
	events    *EventService
	weather   *WeatherService
	reminders *ReminderService
	cron      *cron.Cron
}

// NewRefresherService constructs a RefresherService with dependencies.
func NewRefresherService(
	events *EventService,
	weather *WeatherService,
	reminders *ReminderService) *RefresherService {

	return &RefresherService{
		events:    events,
		weather:   weather,
		reminders: reminders,
	}
}

// Start registers the refresh job under the given cron spec and kicks
// off the scheduler in the background.
func (rs *RefresherService) Start(spec string) error {
	rs.cron = cron.New()
	if _, err := rs.cron.AddFunc(spec, func() {
		log.Println("[RefresherService] Running periodic refresh job.")
		if err := rs.RefreshAll(); err != nil {
			log.Printf("[RefresherService] RefreshAll returned error: %v", err)
		} else {
			log.Println("[RefresherService] RefreshAll completed successfully.")
		}
	}); err != nil {
		return err
	}
	rs.cron.Start()
	log.Printf("[RefresherService] Periodic refresh scheduled (%s)", spec)
	return nil
}

// Stop halts the periodic job. Already-running refreshes finish.
func (rs *RefresherService) Stop() {
	if rs.cron != nil {
		rs.cron.Stop()
	}
}

// RefreshAll performs one full refresh cycle: events, then forecast
// summaries for their dates, then reminders.
func (rs *RefresherService) RefreshAll() error {
	events, err := rs.events.UpcomingEvents()
	if err != nil {
		log.Printf("[RefresherService] Failed to fetch upcoming events: %v", err)
		return err
	}
	log.Printf("[RefresherService] Refreshing %d upcoming events", len(events))

	rs.weather.RefreshDaySummaries(uniqueDates(events))

	for _, event := range events {
		if _, err := rs.reminders.ScheduleForEvent(event); err != nil {
			log.Printf("[RefresherService] Failed to re-arm reminder for event %d: %v", event.ID, err)
		}
	}
	return nil
}

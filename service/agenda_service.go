package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"chronos/api/chronos"
	"chronos/config"
	"chronos/models"
	"chronos/util"
)

// AgendaItem is one row of the merged upcoming view: either a one-off
// event or a concrete occurrence of a weekly schedule.
type AgendaItem struct {
	Kind        string    `json:"kind"` // "event" or "schedule"
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime,omitempty"`
	Start       time.Time `json:"-"`
}

// AgendaService merges upcoming events with the occurrences of the
// weekly schedules over a bounded horizon.
type AgendaService struct {
	events     *EventService
	chronosApi chronos.ChronosAPI
	loc        *time.Location
	now        func() time.Time
}

// NewAgendaService constructs an AgendaService. loc nil means local time.
func NewAgendaService(events *EventService, chronosApi chronos.ChronosAPI, loc *time.Location) *AgendaService {
	if loc == nil {
		loc = time.Local
	}
	return &AgendaService{
		events:     events,
		chronosApi: chronosApi,
		loc:        loc,
		now:        time.Now,
	}
}

// Upcoming returns the merged agenda for the next `days` days, ordered
// by start instant. days outside [1, MAX_AGENDA_HORIZON_DAYS] falls
// back to the default horizon.
func (as *AgendaService) Upcoming(days int) ([]AgendaItem, error) {
	if days < 1 || days > config.MAX_AGENDA_HORIZON_DAYS {
		days = config.DEFAULT_AGENDA_HORIZON_DAYS
	}

	now := as.now().In(as.loc)
	horizon := now.AddDate(0, 0, days)

	items, err := as.eventItems(now, horizon)
	if err != nil {
		return nil, err
	}

	occurrences, err := as.scheduleItems(now, horizon)
	if err != nil {
		// Events alone are still a useful agenda; schedule expansion
		// failures degrade like any other fetch failure.
		log.Printf("[AgendaService] Schedule expansion failed: %v", err)
	} else {
		items = append(items, occurrences...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items, nil
}

func (as *AgendaService) eventItems(now, horizon time.Time) ([]AgendaItem, error) {
	events, err := as.events.UpcomingEvents()
	if err != nil {
		return nil, err
	}

	var items []AgendaItem
	for _, event := range events {
		start, err := util.CombineDateTime(event.Date, event.StartTime, as.loc)
		if err != nil {
			continue
		}
		if start.After(horizon) {
			continue
		}
		items = append(items, AgendaItem{
			Kind:        "event",
			Name:        event.Name,
			Description: event.Description,
			Date:        event.Date,
			StartTime:   event.StartTime,
			Start:       start,
		})
	}
	return items, nil
}

// scheduleItems expands each weekly schedule into its concrete dated
// occurrences inside (now, horizon].
func (as *AgendaService) scheduleItems(now, horizon time.Time) ([]AgendaItem, error) {
	schedules, err := as.chronosApi.GetSchedules()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	var items []AgendaItem
	for _, schedule := range schedules {
		weekday, ok := models.WeekdayFor(schedule.Day)
		if !ok {
			log.Printf("[AgendaService] Skipping schedule %d with unknown day %q", schedule.ID, schedule.Day)
			continue
		}
		dtstart, err := util.ParseClock(schedule.StartTime, now)
		if err != nil {
			log.Printf("[AgendaService] Skipping schedule %d with bad start time: %v", schedule.ID, err)
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   dtstart.AddDate(0, 0, -7), // one week back so today's weekday is covered
			Byweekday: []rrule.Weekday{rruleWeekday(weekday)},
		})
		if err != nil {
			log.Printf("[AgendaService] Bad recurrence for schedule %d: %v", schedule.ID, err)
			continue
		}

		for _, occurrence := range rule.Between(now, horizon, false) {
			items = append(items, AgendaItem{
				Kind:        "schedule",
				Name:        schedule.Name,
				Description: schedule.Description,
				Date:        occurrence.Format(util.DateLayout),
				StartTime:   schedule.StartTime,
				EndTime:     schedule.EndTime,
				Start:       occurrence,
			})
		}
	}
	return items, nil
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}

package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"chronos/models"
	"chronos/util"
)

// Exporter renders events and weekly schedules as an iCalendar feed so
// the agenda can be subscribed to from any desktop calendar.
type Exporter struct {
	loc *time.Location
	now func() time.Time
}

// NewExporter constructs an Exporter. loc nil means local time.
func NewExporter(loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.Local
	}
	return &Exporter{loc: loc, now: time.Now}
}

// Export serializes the given events and schedules into a single
// VCALENDAR. One-off events become plain VEVENTs; weekly schedules
// become recurring VEVENTs with a FREQ=WEEKLY rule anchored on their
// next occurrence. Entries with unparseable fields are skipped.
func (ex *Exporter) Export(events []models.Event, schedules []models.Schedule) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//chronos//calendar//ES")
	cal.SetName("Chronos")

	now := ex.now().In(ex.loc)

	for _, event := range events {
		start, err := util.CombineDateTime(event.Date, event.StartTime, ex.loc)
		if err != nil {
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("event-%d@chronos", event.ID))
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(time.Hour))
		ve.SetSummary(event.Name)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
	}

	for _, schedule := range schedules {
		weekday, ok := models.WeekdayFor(schedule.Day)
		if !ok {
			continue
		}
		start, err := util.ParseClock(schedule.StartTime, nextWeekday(now, weekday))
		if err != nil {
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("schedule-%d@chronos", schedule.ID))
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		if end, err := util.ParseClock(schedule.EndTime, start); err == nil && end.After(start) {
			ve.SetEndAt(end)
		} else {
			ve.SetEndAt(start.Add(time.Hour))
		}
		ve.SetSummary(schedule.Name)
		if schedule.Description != "" {
			ve.SetDescription(schedule.Description)
		}
		ve.AddRrule("FREQ=WEEKLY;BYDAY=" + byDayCode(weekday))
	}

	return cal.Serialize(), nil
}

// nextWeekday returns the first instant on or after t that falls on the
// given weekday, keeping t's clock.
func nextWeekday(t time.Time, weekday time.Weekday) time.Time {
	diff := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, diff)
}

func byDayCode(wd time.Weekday) string {
	switch wd {
	case time.Monday:
		return "MO"
	case time.Tuesday:
		return "TU"
	case time.Wednesday:
		return "WE"
	case time.Thursday:
		return "TH"
	case time.Friday:
		return "FR"
	case time.Saturday:
		return "SA"
	default:
		return "SU"
	}
}

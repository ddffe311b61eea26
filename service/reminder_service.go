package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"chronos/models"
	"chronos/notify"
	"chronos/util"
)

const reminderTitle = "Recordatorio de Evento"

// reminderHandle is one armed reminder. Tracking handles per event is
// what lets an edit replace the previous reminder instead of stacking
// a second one.
type reminderHandle struct {
	ID     uuid.UUID
	FireAt time.Time
	timer  *time.Timer
}

// ReminderService computes reminder fire instants and arms local
// timers for them, one per event, replace-on-reschedule.
type ReminderService struct {
	notifier  notify.Notifier
	leadHours int
	loc       *time.Location

	mu    sync.Mutex
	armed map[int]*reminderHandle
}

// NewReminderService constructs a ReminderService. leadHours is the
// configured lead time in whole hours (0-24); loc nil means local time.
func NewReminderService(notifier notify.Notifier, leadHours int, loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{
		notifier:  notifier,
		leadHours: leadHours,
		loc:       loc,
		armed:     make(map[int]*reminderHandle),
	}
}

// ComputeFireInstant resolves an event's date and start time into the
// instant its reminder should fire: the start instant minus leadHours.
// The result may already be in the past; that is not validated here,
// the notifier's contract is to deliver immediately in that case.
func (rs *ReminderService) ComputeFireInstant(date, startTime string, leadHours int) (time.Time, error) {
	start, err := util.CombineDateTime(date, startTime, rs.loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(-time.Duration(leadHours) * time.Hour), nil
}

// ScheduleForEvent arms the reminder for an event, cancelling any
// reminder previously armed for the same event id first.
func (rs *ReminderService) ScheduleForEvent(event models.Event) (uuid.UUID, error) {
	fireAt, err := rs.ComputeFireInstant(event.Date, event.StartTime, rs.leadHours)
	if err != nil {
		return uuid.Nil, fmt.Errorf("cannot schedule reminder for event %d: %w", event.ID, err)
	}

	body := fmt.Sprintf("Tienes un evento mañana: %s\nA las: %s", event.Name, event.StartTime)

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if prev, ok := rs.armed[event.ID]; ok {
		prev.timer.Stop()
		delete(rs.armed, event.ID)
		log.Printf("[ReminderService] Replaced reminder %s for event %d", prev.ID, event.ID)
	}

	handle := &reminderHandle{ID: uuid.New(), FireAt: fireAt}
	eventID := event.ID

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}
	handle.timer = time.AfterFunc(delay, func() {
		if err := rs.notifier.Notify(reminderTitle, body); err != nil {
			log.Printf("[ReminderService] Notify failed for event %d: %v", eventID, err)
		}
		rs.mu.Lock()
		if current, ok := rs.armed[eventID]; ok && current == handle {
			delete(rs.armed, eventID)
		}
		rs.mu.Unlock()
	})

	rs.armed[event.ID] = handle
	log.Printf("[ReminderService] Armed reminder %s for event %d at %s",
		handle.ID, event.ID, fireAt.Format(time.RFC3339))
	return handle.ID, nil
}

// Cancel disarms the reminder for an event, reporting whether one was armed.
func (rs *ReminderService) Cancel(eventID int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	handle, ok := rs.armed[eventID]
	if !ok {
		return false
	}
	handle.timer.Stop()
	delete(rs.armed, eventID)
	log.Printf("[ReminderService] Cancelled reminder %s for event %d", handle.ID, eventID)
	return true
}

// CancelAll disarms every tracked reminder.
func (rs *ReminderService) CancelAll() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for id, handle := range rs.armed {
		handle.timer.Stop()
		delete(rs.armed, id)
	}
}

// FireAt reports the armed fire instant for an event, if any.
func (rs *ReminderService) FireAt(eventID int) (time.Time, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	handle, ok := rs.armed[eventID]
	if !ok {
		return time.Time{}, false
	}
	return handle.FireAt, true
}

// ArmedCount reports how many reminders are currently armed.
func (rs *ReminderService) ArmedCount() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.armed)
}

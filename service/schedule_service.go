package services

import (
	"fmt"

	"chronos/api/chronos"
	"chronos/models"
	"chronos/session"
)

// DaySchedules is one weekday bucket of the weekly view.
type DaySchedules struct {
	Day       string            `json:"day"`
	Schedules []models.Schedule `json:"schedules"`
}

// ScheduleService manages the recurring weekly schedule entries.
type ScheduleService struct {
	chronosApi chronos.ChronosAPI
	sess       *session.Session
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(chronosApi chronos.ChronosAPI, sess *session.Session) *ScheduleService {
	return &ScheduleService{
		chronosApi: chronosApi,
		sess:       sess,
	}
}

// GroupByDay partitions a flat schedule list into weekday buckets.
// Retrieval order is preserved inside each bucket; every canonical
// weekday gets a bucket even when empty, and an off-list day value
// still lands in its own bucket so nothing is dropped.
func GroupByDay(schedules []models.Schedule) map[string][]models.Schedule {
	grouped := make(map[string][]models.Schedule, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		grouped[day] = []models.Schedule{}
	}
	for _, schedule := range schedules {
		grouped[schedule.Day] = append(grouped[schedule.Day], schedule)
	}
	return grouped
}

// WeeklyView fetches every schedule and returns the seven canonical
// buckets in display order.
func (ss *ScheduleService) WeeklyView() ([]DaySchedules, error) {
	schedules, err := ss.chronosApi.GetSchedules()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	grouped := GroupByDay(schedules)
	week := make([]DaySchedules, 0, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		week = append(week, DaySchedules{Day: day, Schedules: grouped[day]})
	}
	return week, nil
}

// SchedulesForDay fetches one weekday's entries, the expand-a-day path.
func (ss *ScheduleService) SchedulesForDay(day string) ([]models.Schedule, error) {
	schedules, err := ss.chronosApi.GetSchedulesByDay(day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules for %s: %w", day, err)
	}
	return schedules, nil
}

// CreateSchedule persists a new entry with user attribution.
func (ss *ScheduleService) CreateSchedule(schedule models.Schedule) (*models.Schedule, error) {
	if _, ok := models.WeekdayFor(schedule.Day); !ok {
		return nil, fmt.Errorf("unknown weekday %q", schedule.Day)
	}
	if ss.sess.UserID != 0 {
		schedule.User = &models.UserRef{ID: ss.sess.UserID}
	}
	created, err := ss.chronosApi.CreateSchedule(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return created, nil
}

// UpdateSchedule replaces an entry by id.
func (ss *ScheduleService) UpdateSchedule(id int, schedule models.Schedule) (*models.Schedule, error) {
	updated, err := ss.chronosApi.UpdateSchedule(id, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule %d: %w", id, err)
	}
	return updated, nil
}

// DeleteSchedule removes an entry by id.
func (ss *ScheduleService) DeleteSchedule(id int) error {
	if err := ss.chronosApi.DeleteSchedule(id); err != nil {
		return fmt.Errorf("failed to delete schedule %d: %w", id, err)
	}
	return nil
}

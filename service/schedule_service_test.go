package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/models"
	"chronos/session"
)

func TestGroupByDay(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Name: "Gimnasio", Day: "Lunes", StartTime: "07:00", EndTime: "08:00"},
		{ID: 2, Name: "Inglés", Day: "Martes", StartTime: "18:00", EndTime: "19:30"},
		{ID: 3, Name: "Piano", Day: "Lunes", StartTime: "20:00", EndTime: "21:00"},
	}

	grouped := GroupByDay(schedules)

	require.Len(t, grouped, len(models.DaysOfWeek))
	assert.Equal(t, []int{1, 3}, scheduleIDs(grouped["Lunes"]), "retrieval order kept per bucket")
	assert.Equal(t, []int{2}, scheduleIDs(grouped["Martes"]))
	for _, day := range []string{"Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"} {
		assert.Empty(t, grouped[day], "day %s should have an empty bucket", day)
	}
}

func TestGroupByDay_KeepsEveryItem(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, Day: "Viernes"},
		{ID: 2, Day: "Funday"},
	}

	grouped := GroupByDay(schedules)

	total := 0
	for _, bucket := range grouped {
		total += len(bucket)
	}
	assert.Equal(t, len(schedules), total, "partition must not drop entries")
	assert.Equal(t, []int{2}, scheduleIDs(grouped["Funday"]), "off-list day gets its own bucket")
}

func TestWeeklyView_Order(t *testing.T) {
	api := &stubAPI{schedules: []models.Schedule{
		{ID: 1, Name: "Mercado", Day: "Sábado", StartTime: "10:00", EndTime: "11:00"},
	}}
	ss := NewScheduleService(api, session.Default())

	week, err := ss.WeeklyView()
	require.NoError(t, err)
	require.Len(t, week, 7)

	for i, bucket := range week {
		assert.Equal(t, models.DaysOfWeek[i], bucket.Day)
	}
	assert.Equal(t, []int{1}, scheduleIDs(week[5].Schedules))
}

func TestSchedulesForDay(t *testing.T) {
	api := &stubAPI{schedules: []models.Schedule{
		{ID: 1, Day: "Lunes"},
		{ID: 2, Day: "Jueves"},
	}}
	ss := NewScheduleService(api, session.Default())

	got, err := ss.SchedulesForDay("Jueves")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, scheduleIDs(got))
}

func TestCreateSchedule(t *testing.T) {
	api := &stubAPI{}
	sess := session.Default()
	sess.UserID = 7
	ss := NewScheduleService(api, sess)

	created, err := ss.CreateSchedule(models.Schedule{
		Name:      "Gimnasio",
		Day:       "Lunes",
		StartTime: "07:00",
		EndTime:   "08:00",
	})
	require.NoError(t, err)
	require.NotNil(t, created.User)
	assert.Equal(t, 7, created.User.ID)
	assert.NotZero(t, created.ID)
}

func TestCreateSchedule_RejectsUnknownDay(t *testing.T) {
	ss := NewScheduleService(&stubAPI{}, session.Default())

	_, err := ss.CreateSchedule(models.Schedule{Name: "Gimnasio", Day: "Monday"})
	assert.Error(t, err)
}

func scheduleIDs(schedules []models.Schedule) []int {
	ids := make([]int, 0, len(schedules))
	for _, schedule := range schedules {
		ids = append(ids, schedule.ID)
	}
	return ids
}

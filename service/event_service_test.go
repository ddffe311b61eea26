package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisdao "chronos/dao/redis"
	"chronos/db"
	"chronos/models"
	"chronos/models/forecast"
	"chronos/session"
)

func newEventFixture(t *testing.T, api *stubAPI, now time.Time) (*EventService, *ReminderService) {
	t.Helper()
	sess := session.Default()
	sess.UserID = 7
	sess.City = &models.City{Name: "Madrid", Coord: models.Coord{Lat: 40.4, Lon: -3.7}}

	dao := redisdao.NewRedisForecastDAO(db.NewMockRedisClient(context.Background()))
	weather := NewWeatherService(api, dao, sess, filepath.Join(t.TempDir(), "session.yaml"))
	reminders := NewReminderService(newRecordingNotifier(), 12, time.UTC)
	t.Cleanup(reminders.CancelAll)

	es := NewEventService(api, weather, reminders, sess, time.UTC)
	es.now = func() time.Time { return now }
	return es, reminders
}

func TestUpcomingEvents_FiltersAndSorts(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{events: []models.Event{
		{ID: 1, Name: "Pasado", Date: "2024-06-10", StartTime: "09:00"},
		{ID: 2, Name: "Tarde", Date: "2024-06-16", StartTime: "18:00"},
		{ID: 3, Name: "Temprano", Date: "2024-06-16", StartTime: "08:00"},
		{ID: 4, Name: "Mañana", Date: "2024-06-15", StartTime: "10:00"},
		{ID: 5, Name: "Roto", Date: "junio", StartTime: "10:00"},
	}}
	es, _ := newEventFixture(t, api, now)

	got, err := es.UpcomingEvents()
	require.NoError(t, err)

	ids := make([]int, 0, len(got))
	for _, event := range got {
		ids = append(ids, event.ID)
	}
	assert.Equal(t, []int{4, 3, 2}, ids)
}

func TestUpcomingEvents_SameDayCutoff(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{events: []models.Event{
		{ID: 1, Date: "2024-06-15", StartTime: "09:00"}, // already started
		{ID: 2, Date: "2024-06-15", StartTime: "13:00"},
	}}
	es, _ := newEventFixture(t, api, now)

	got, err := es.UpcomingEvents()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestUpcomingWithWeather(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{
		events: []models.Event{
			{ID: 1, Name: "Picnic", Date: "2024-06-15", StartTime: "10:00"},
			{ID: 2, Name: "Cine", Date: "2024-06-15", StartTime: "20:00"},
			{ID: 3, Name: "Lejos", Date: "2024-08-01", StartTime: "10:00"},
		},
		forecast: &forecast.Response{
			List: []forecast.Sample{
				{DtTxt: "2024-06-15 12:00:00", Main: forecast.Metrics{TempMax: 24}, Weather: []forecast.Condition{{Main: "Clear"}}},
			},
		},
	}
	es, _ := newEventFixture(t, api, now)

	got, err := es.UpcomingWithWeather()
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 24.0, *got[0].Weather.MaxTemp)
	assert.Equal(t, 24.0, *got[1].Weather.MaxTemp, "events share the per-date summary")
	assert.False(t, got[2].Weather.Available(), "out-of-horizon events carry the empty summary")
}

func TestCreateEvent_SchedulesReminderAndAttributesUser(t *testing.T) {
	// Far-future date keeps the armed timer from firing mid-test.
	now := time.Date(2100, 6, 14, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{}
	es, reminders := newEventFixture(t, api, now)

	created, err := es.CreateEvent(models.Event{
		Name:      "Reunión",
		Date:      "2100-06-20",
		StartTime: "09:00",
	})
	require.NoError(t, err)

	require.Len(t, api.created, 1)
	require.NotNil(t, api.created[0].User)
	assert.Equal(t, 7, api.created[0].User.ID)

	fireAt, ok := reminders.FireAt(created.ID)
	require.True(t, ok, "create must arm the reminder")
	want := time.Date(2100, 6, 19, 21, 0, 0, 0, time.UTC)
	assert.True(t, fireAt.Equal(want), "fireAt = %v; want %v", fireAt, want)
}

func TestCreateEvent_RejectsPastDate(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	es, _ := newEventFixture(t, &stubAPI{}, now)

	_, err := es.CreateEvent(models.Event{Name: "Ayer", Date: "2024-06-13", StartTime: "09:00"})
	assert.Error(t, err)

	// Today is still allowed; the cutoff is whole days.
	_, err = es.CreateEvent(models.Event{Name: "Hoy", Date: "2024-06-14", StartTime: "23:00"})
	assert.NoError(t, err)
}

func TestUpdateEvent_ReplacesReminder(t *testing.T) {
	now := time.Date(2100, 6, 14, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{}
	es, reminders := newEventFixture(t, api, now)

	created, err := es.CreateEvent(models.Event{Name: "Reunión", Date: "2100-06-20", StartTime: "09:00"})
	require.NoError(t, err)

	_, err = es.UpdateEvent(created.ID, models.Event{Name: "Reunión", Date: "2100-06-21", StartTime: "09:00"})
	require.NoError(t, err)

	assert.Equal(t, 1, reminders.ArmedCount(), "edit must not stack reminders")
	fireAt, _ := reminders.FireAt(created.ID)
	want := time.Date(2100, 6, 20, 21, 0, 0, 0, time.UTC)
	assert.True(t, fireAt.Equal(want))
}

func TestDeleteEvent_CancelsReminder(t *testing.T) {
	now := time.Date(2100, 6, 14, 12, 0, 0, 0, time.UTC)
	api := &stubAPI{}
	es, reminders := newEventFixture(t, api, now)

	created, err := es.CreateEvent(models.Event{Name: "Reunión", Date: "2100-06-20", StartTime: "09:00"})
	require.NoError(t, err)

	require.NoError(t, es.DeleteEvent(created.ID))
	assert.Equal(t, []int{created.ID}, api.deletedIDs)
	assert.Equal(t, 0, reminders.ArmedCount())
}

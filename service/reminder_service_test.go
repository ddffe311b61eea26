package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/models"
)

// recordingNotifier captures delivered notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	delivered []string
	fired     chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{fired: make(chan struct{}, 8)}
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.mu.Lock()
	n.delivered = append(n.delivered, title+"|"+body)
	n.mu.Unlock()
	n.fired <- struct{}{}
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.delivered)
}

func TestComputeFireInstant(t *testing.T) {
	rs := NewReminderService(newRecordingNotifier(), 12, time.UTC)

	got, err := rs.ComputeFireInstant("2024-06-20", "09:00", 12)
	require.NoError(t, err)
	want := time.Date(2024, 6, 19, 21, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestComputeFireInstant_LeadRange(t *testing.T) {
	rs := NewReminderService(newRecordingNotifier(), 12, time.UTC)
	start := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)

	for lead := 0; lead <= 24; lead++ {
		got, err := rs.ComputeFireInstant("2024-06-20", "09:00", lead)
		require.NoError(t, err)
		want := start.Add(-time.Duration(lead) * time.Hour)
		assert.True(t, got.Equal(want), "lead=%d: got %v, want %v", lead, got, want)
	}
}

func TestComputeFireInstant_InvalidInput(t *testing.T) {
	rs := NewReminderService(newRecordingNotifier(), 12, time.UTC)

	_, err := rs.ComputeFireInstant("20/06/2024", "09:00", 12)
	assert.Error(t, err)
	_, err = rs.ComputeFireInstant("2024-06-20", "9am", 12)
	assert.Error(t, err)
}

func TestScheduleForEvent_ReplacesPreviousHandle(t *testing.T) {
	notifier := newRecordingNotifier()
	rs := NewReminderService(notifier, 0, time.UTC)
	defer rs.CancelAll()

	farFuture := time.Now().UTC().AddDate(0, 0, 2)
	event := models.Event{
		ID:        1,
		Name:      "Reunión",
		Date:      farFuture.Format("2006-01-02"),
		StartTime: "10:00",
	}

	first, err := rs.ScheduleForEvent(event)
	require.NoError(t, err)
	firstFire, ok := rs.FireAt(1)
	require.True(t, ok)

	// Editing the event reschedules; the old reminder must not stack.
	event.StartTime = "12:00"
	second, err := rs.ScheduleForEvent(event)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "a reschedule mints a new handle")
	assert.Equal(t, 1, rs.ArmedCount())

	secondFire, ok := rs.FireAt(1)
	require.True(t, ok)
	assert.True(t, secondFire.After(firstFire), "fire instant must track the edit")
	assert.Equal(t, 0, notifier.count(), "nothing should have fired yet")
}

func TestScheduleForEvent_PastInstantFiresImmediately(t *testing.T) {
	notifier := newRecordingNotifier()
	rs := NewReminderService(notifier, 12, time.UTC)
	defer rs.CancelAll()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	_, err := rs.ScheduleForEvent(models.Event{
		ID:        2,
		Name:      "Entrega",
		Date:      yesterday.Format("2006-01-02"),
		StartTime: "09:00",
	})
	require.NoError(t, err)

	select {
	case <-notifier.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reminder for a past instant did not fire")
	}
	assert.Equal(t, 1, notifier.count())
	assert.Contains(t, notifier.delivered[0], "Recordatorio de Evento")
	assert.Contains(t, notifier.delivered[0], "Entrega")
	assert.Contains(t, notifier.delivered[0], "A las: 09:00")
}

func TestCancel(t *testing.T) {
	rs := NewReminderService(newRecordingNotifier(), 0, time.UTC)
	defer rs.CancelAll()

	farFuture := time.Now().UTC().AddDate(0, 0, 2)
	_, err := rs.ScheduleForEvent(models.Event{
		ID:        3,
		Name:      "Estudio",
		Date:      farFuture.Format("2006-01-02"),
		StartTime: "08:00",
	})
	require.NoError(t, err)

	assert.True(t, rs.Cancel(3))
	assert.False(t, rs.Cancel(3), "second cancel finds nothing armed")
	assert.Equal(t, 0, rs.ArmedCount())
	_, ok := rs.FireAt(3)
	assert.False(t, ok)
}

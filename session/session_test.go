package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/models"
)

func TestLoad_MissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	sess, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDateFormat, sess.DateFormat)
	assert.Equal(t, DefaultNotificationHours, sess.NotificationHours)
	assert.Empty(t, sess.Token)

	// The default must have been persisted with owner-only perms.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	in := &Session{
		Token:  "jwt-123",
		UserID: 7,
		City: &models.City{
			Name:  "Madrid",
			Coord: models.Coord{Lat: 40.4168, Lon: -3.7038},
		},
		DateFormat:        "yyyy-MM-dd",
		NotificationHours: 6,
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", out.Token)
	assert.Equal(t, 7, out.UserID)
	require.NotNil(t, out.City)
	assert.Equal(t, "Madrid", out.City.Name)
	assert.InDelta(t, -3.7038, out.City.Coord.Lon, 1e-9)
	assert.Equal(t, "yyyy-MM-dd", out.DateFormat)
	assert.Equal(t, 6, out.NotificationHours)
}

func TestNormalize_ClampsLeadHours(t *testing.T) {
	for _, hours := range []int{-1, 25, 100} {
		sess := &Session{NotificationHours: hours}
		sess.Normalize()
		assert.Equal(t, DefaultNotificationHours, sess.NotificationHours, "hours=%d", hours)
	}

	// In-range values survive, including zero.
	sess := &Session{NotificationHours: 0, DateFormat: "x"}
	sess.Normalize()
	assert.Equal(t, 0, sess.NotificationHours)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

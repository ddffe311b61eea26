package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chronos/models"
)

const (
	DefaultDateFormat        = "dd/MM/yyyy"
	DefaultNotificationHours = 12
)

// Session is the per-user state the app keeps between runs: the API
// credentials plus the settings screens write. It is loaded exactly
// once at startup and injected into the services that need it.
type Session struct {
	// Token is the bearer token obtained from POST /auth/login.
	Token string `yaml:"jwt_token,omitempty"`

	// UserID identifies the authenticated user for create payloads.
	UserID int `yaml:"user_id,omitempty"`

	// City is the selected weather location, if one has been resolved.
	City *models.City `yaml:"selected_city,omitempty"`

	// DateFormat controls display rendering of calendar dates.
	DateFormat string `yaml:"date_format"`

	// NotificationHours is the reminder lead time before an event's
	// start, in whole hours.
	NotificationHours int `yaml:"notification_hours"`
}

// Default returns an in-memory default session.
func Default() *Session {
	return &Session{
		DateFormat:        DefaultDateFormat,
		NotificationHours: DefaultNotificationHours,
	}
}

// Normalize fills in missing or out-of-range values so that session
// files written by older versions still behave.
func (s *Session) Normalize() {
	if s.DateFormat == "" {
		s.DateFormat = DefaultDateFormat
	}
	if s.NotificationHours < 0 || s.NotificationHours > 24 {
		s.NotificationHours = DefaultNotificationHours
	}
}

// Load reads the session from the given YAML path.
//
// If the file does not exist, a default session is written there and
// returned; a missing setting is never an error.
func Load(path string) (*Session, error) {
	if path == "" {
		return nil, errors.New("session path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			sess := Default()
			if err := Save(path, sess); err != nil {
				return sess, err
			}
			return sess, nil
		}
		return nil, err
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	sess.Normalize()

	return &sess, nil
}

// Save writes the session atomically with 0600 permissions; it holds
// the JWT, so it never gets group or world bits.
func Save(path string, sess *Session) error {
	if path == "" {
		return errors.New("session path is empty")
	}
	if sess == nil {
		return errors.New("session is nil")
	}

	sess.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".chronos-session-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save is a convenience method that delegates to the package-level
// Save function.
func (s *Session) Save(path string) error {
	return Save(path, s)
}

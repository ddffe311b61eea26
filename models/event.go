package models

// Event is a one-off calendar entry. The remote API owns it; the
// client only ever holds a transient copy from the latest fetch.
type Event struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`      // calendar date, "YYYY-MM-DD"
	StartTime   string   `json:"startTime"` // wall clock, "HH:MM"
	User        *UserRef `json:"user,omitempty"`
}

// UserRef is the owner reference the API expects on create payloads.
type UserRef struct {
	ID int `json:"id"`
}

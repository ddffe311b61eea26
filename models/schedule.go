package models

// Schedule is a recurring weekly commitment bound to a weekday,
// distinct from a one-off Event.
type Schedule struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Day         string   `json:"day"`       // weekday name, see DaysOfWeek
	StartTime   string   `json:"startTime"` // "HH:MM"
	EndTime     string   `json:"endTime"`   // "HH:MM"
	User        *UserRef `json:"user,omitempty"`
}

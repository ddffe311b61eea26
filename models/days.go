package models

import "time"

// DaysOfWeek is the canonical weekday ordering used by the weekly
// view. The names double as the wire values the API stores in
// Schedule.Day, so they stay in the product's language.
var DaysOfWeek = []string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

var dayToWeekday = map[string]time.Weekday{
	"Lunes":     time.Monday,
	"Martes":    time.Tuesday,
	"Miércoles": time.Wednesday,
	"Jueves":    time.Thursday,
	"Viernes":   time.Friday,
	"Sábado":    time.Saturday,
	"Domingo":   time.Sunday,
}

// DayIndex returns the position of day within DaysOfWeek, or
// len(DaysOfWeek) for unknown values so they sort last.
func DayIndex(day string) int {
	for i, d := range DaysOfWeek {
		if d == day {
			return i
		}
	}
	return len(DaysOfWeek)
}

// WeekdayFor maps a canonical day name to its time.Weekday.
func WeekdayFor(day string) (time.Weekday, bool) {
	wd, ok := dayToWeekday[day]
	return wd, ok
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday day of the week in Monday-first order (Monday = 0, Sunday = 6)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek number of weekdays in a schedule
const DaysInWeek = 7

var weekdayKeys = [DaysInWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var weekdayLabels = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// AllWeekdays returns weekdays in calendar order
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday resolves a weekday key ("monday".."sunday"), case-insensitive
func ParseWeekday(key string) (Weekday, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range weekdayKeys {
		if k == key {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, key)
}

// WeekdayFromTime maps Go's Sunday-first weekday onto the Monday-first order
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % DaysInWeek)
}

// IsValid returns true for Monday..Sunday
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// Key returns the schedule key, e.g. "monday"
func (w Weekday) Key() string {
	if !w.IsValid() {
		return ""
	}
	return weekdayKeys[w]
}

// Label returns the display name, e.g. "Monday"
func (w Weekday) Label() string {
	if !w.IsValid() {
		return ""
	}
	return weekdayLabels[w]
}

// Add returns the weekday n days later, wrapping around the week
func (w Weekday) Add(n int) Weekday {
	return Weekday(((int(w)+n)%DaysInWeek + DaysInWeek) % DaysInWeek)
}

func (w Weekday) String() string {
	return w.Key()
}

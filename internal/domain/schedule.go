package domain

import (
	"fmt"
	"strings"
)

// WeeklySchedule business hours for each weekday, indexed by Weekday.
// A fixed array keeps exactly one entry per weekday.
type WeeklySchedule [DaysInWeek]DayHours

// DefaultWeeklySchedule every day open 10:00 AM - 08:00 PM
func DefaultWeeklySchedule() WeeklySchedule {
	var s WeeklySchedule
	for i := range s {
		s[i] = DefaultDayHours()
	}
	return s
}

// Day returns hours for the given weekday
func (s WeeklySchedule) Day(w Weekday) DayHours {
	return s[w]
}

// WithDay returns a copy of the schedule with one day replaced
func (s WeeklySchedule) WithDay(w Weekday, d DayHours) WeeklySchedule {
	s[w] = d
	return s
}

// Validate checks every open day
func (s WeeklySchedule) Validate() error {
	for _, w := range AllWeekdays() {
		if err := s[w].Validate(); err != nil {
			return fmt.Errorf("%s: %w", w.Key(), err)
		}
	}
	return nil
}

// IsClosedAllWeek returns true when no day is open
func (s WeeklySchedule) IsClosedAllWeek() bool {
	for _, d := range s {
		if d.IsOpen {
			return false
		}
	}
	return true
}

// WorkingHours encodes the schedule as weekday key -> FormatHours value
func (s WeeklySchedule) WorkingHours() map[string]string {
	out := make(map[string]string, DaysInWeek)
	for _, w := range AllWeekdays() {
		out[w.Key()] = FormatHours(s[w])
	}
	return out
}

// ScheduleFromWorkingHours decodes a working hours map. Missing weekdays get the default day,
// unknown keys are rejected.
func ScheduleFromWorkingHours(hours map[string]string) (WeeklySchedule, error) {
	s := DefaultWeeklySchedule()
	for key, raw := range hours {
		w, err := ParseWeekday(key)
		if err != nil {
			return WeeklySchedule{}, err
		}
		s[w] = ParseHoursString(raw)
	}
	return s, nil
}

// String human readable multi-line representation
func (s WeeklySchedule) String() string {
	var b strings.Builder
	for _, w := range AllWeekdays() {
		fmt.Fprintf(&b, "%-9s %s\n", w.Label(), FormatHours(s[w]))
	}
	return b.String()
}

// ScheduleFromWorkingHoursStrict decodes a working hours map with ParseHoursStringStrict
func ScheduleFromWorkingHoursStrict(base WeeklySchedule, hours map[string]string) (WeeklySchedule, error) {
	for key, raw := range hours {
		w, err := ParseWeekday(key)
		if err != nil {
			return WeeklySchedule{}, err
		}
		day, err := ParseHoursStringStrict(raw)
		if err != nil {
			return WeeklySchedule{}, fmt.Errorf("%s: %w", w.Key(), err)
		}
		base[w] = day
	}
	return base, nil
}

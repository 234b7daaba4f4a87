package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var hoursRangePattern = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2}\s*[AP]M)\s*[-–—]\s*(\d{1,2}:\d{2}\s*[AP]M)$`)

// DayHours open/closed status and opening hours of a single weekday.
// Times are display strings in "H:MM AM|PM" form.
type DayHours struct {
	IsOpen      bool
	OpeningTime string
	ClosingTime string
}

// DefaultDayHours returns an open day 10:00 AM - 08:00 PM
func DefaultDayHours() DayHours {
	return DayHours{
		IsOpen:      true,
		OpeningTime: DefaultOpeningTime,
		ClosingTime: DefaultClosingTime,
	}
}

// ClosedDay returns a closed day that keeps default times for when it is reopened
func ClosedDay() DayHours {
	d := DefaultDayHours()
	d.IsOpen = false
	return d
}

// Validate checks the open < close invariant. Closed days are always valid.
func (d DayHours) Validate() error {
	if !d.IsOpen {
		return nil
	}
	return ValidateTimes(d.OpeningTime, d.ClosingTime)
}

// Window returns parsed opening and closing times
func (d DayHours) Window() (types.DisplayTime, types.DisplayTime, error) {
	open, err := types.ParseDisplayTime(d.OpeningTime)
	if err != nil {
		return 0, 0, err
	}
	closing, err := types.ParseDisplayTime(d.ClosingTime)
	if err != nil {
		return 0, 0, err
	}
	return open, closing, nil
}

// Normalize rewrites times in canonical "hh:mm AM|PM" form. Unparsable times are kept as is.
func (d DayHours) Normalize() DayHours {
	if t, err := types.ParseDisplayTime(d.OpeningTime); err == nil {
		d.OpeningTime = t.String()
	}
	if t, err := types.ParseDisplayTime(d.ClosingTime); err == nil {
		d.ClosingTime = t.String()
	}
	return d
}

// ValidateTimes returns nil iff both times parse and open is strictly before close.
// Equal times are rejected (zero-length business day).
func ValidateTimes(open, close string) error {
	openTime, err := types.ParseDisplayTime(open)
	if err != nil {
		return fmt.Errorf("opening time: %w", err)
	}
	closeTime, err := types.ParseDisplayTime(close)
	if err != nil {
		return fmt.Errorf("closing time: %w", err)
	}
	if !openTime.IsBefore(closeTime) {
		return fmt.Errorf("%w: %s >= %s", ErrOpenNotBeforeClose, openTime, closeTime)
	}
	return nil
}

// TimesValid boolean form of ValidateTimes
func TimesValid(open, close string) bool {
	return ValidateTimes(open, close) == nil
}

// FormatHours encodes a day for persistence: "Closed" or "{open} — {close}"
func FormatHours(d DayHours) string {
	if !d.IsOpen {
		return ClosedLabel
	}
	return d.OpeningTime + HoursSeparator + d.ClosingTime
}

// ParseHoursString decodes a stored value produced by FormatHours.
// Any value containing "closed" (case-insensitive) is a closed day.
// Ranges may use a hyphen, en-dash or em-dash separator.
// Anything else falls back to the default open day.
func ParseHoursString(raw string) DayHours {
	raw = strings.TrimSpace(raw)

	if strings.Contains(strings.ToLower(raw), "closed") {
		return ClosedDay()
	}

	m := hoursRangePattern.FindStringSubmatch(raw)
	if m == nil {
		return DefaultDayHours()
	}

	day := DayHours{IsOpen: true, OpeningTime: m[1], ClosingTime: m[2]}
	if _, _, err := day.Window(); err != nil {
		return DefaultDayHours()
	}
	return day
}

// ParseHoursStringStrict like ParseHoursString, but rejects values that would fall back
// to the default day and ranges that break the open < close invariant.
func ParseHoursStringStrict(raw string) (DayHours, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.Contains(strings.ToLower(trimmed), "closed") {
		return ClosedDay(), nil
	}

	m := hoursRangePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return DayHours{}, fmt.Errorf("%w: %q", ErrInvalidHours, raw)
	}

	day := DayHours{IsOpen: true, OpeningTime: m[1], ClosingTime: m[2]}
	if err := day.Validate(); err != nil {
		return DayHours{}, fmt.Errorf("%w: %q: %v", ErrInvalidHours, raw, err)
	}
	return day, nil
}

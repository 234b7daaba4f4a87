package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minutesInHour = 60
	minutesInDay  = 24 * minutesInHour
	halfDay       = 12 * minutesInHour
)

var (
	// ErrInvalidDisplayTime возвращается, когда строка не соответствует формату "H:MM AM|PM"
	ErrInvalidDisplayTime = errors.New("invalid display time format")

	// ErrTimeOutOfRange возвращается при выходе за пределы суток
	ErrTimeOutOfRange = errors.New("display time out of range")
)

var displayTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// DisplayTime время суток в 12-часовом формате отображения ("9:00 AM", "08:00 PM").
// Внутри хранится как количество минут от полуночи, что делает значения сравнимыми.
type DisplayTime int

// ParseDisplayTime парсит строку вида "H:MM AM|PM" (регистр не важен).
// 12:00 AM -> 0, 12:00 PM -> 720.
func ParseDisplayTime(s string) (DisplayTime, error) {
	m := displayTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDisplayTime, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDisplayTime, s)
	}

	// 12 AM это полночь, 12 PM это полдень
	hour %= 12
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}

	return DisplayTime(hour*minutesInHour + minute), nil
}

// MustParseDisplayTime как ParseDisplayTime, но паникует при ошибке.
// Используется для констант и в тестах.
func MustParseDisplayTime(s string) DisplayTime {
	t, err := ParseDisplayTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// MinutesOrZero возвращает минуты от полуночи или 0, если строку не удалось распарсить.
// Нестрогий вариант для вызывающих, которые явно трактуют мусор как начало дня.
func MinutesOrZero(s string) int {
	t, err := ParseDisplayTime(s)
	if err != nil {
		return 0
	}
	return t.Minutes()
}

// NewDisplayTime создает время из количества минут от полуночи
func NewDisplayTime(minutes int) (DisplayTime, error) {
	if minutes < 0 || minutes >= minutesInDay {
		return 0, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return DisplayTime(minutes), nil
}

// Minutes возвращает количество минут от полуночи
func (t DisplayTime) Minutes() int {
	return int(t)
}

// String возвращает каноническое представление "hh:mm AM|PM"
func (t DisplayTime) String() string {
	minutes := int(t)
	suffix := "AM"
	if minutes >= halfDay {
		suffix = "PM"
	}

	hour := (minutes / minutesInHour) % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour, minutes%minutesInHour, suffix)
}

// IsBefore проверяет, что время строго раньше other
func (t DisplayTime) IsBefore(other DisplayTime) bool {
	return t < other
}

// IsAfter проверяет, что время строго позже other
func (t DisplayTime) IsAfter(other DisplayTime) bool {
	return t > other
}

// AddMinutes добавляет минуты, не выходя за пределы суток
func (t DisplayTime) AddMinutes(minutes int) (DisplayTime, error) {
	return NewDisplayTime(int(t) + minutes)
}

// MarshalText реализует encoding.TextMarshaler
func (t DisplayTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *DisplayTime) UnmarshalText(data []byte) error {
	parsed, err := ParseDisplayTime(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

package replace_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет запрос и собирает из него расписание.
// Все открытые дни проверяются до записи
func validateRequest(req *Request) (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule

	if req == nil {
		return schedule, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SalonID <= 0 {
		return schedule, fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return schedule, fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}
	if len(req.Days) != domain.DaysInWeek {
		return schedule, fmt.Errorf("%w: expected %d days, got %d", ErrInvalidInput, domain.DaysInWeek, len(req.Days))
	}

	seen := make(map[domain.Weekday]bool, domain.DaysInWeek)
	for key, in := range req.Days {
		weekday, err := domain.ParseWeekday(key)
		if err != nil {
			return schedule, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if seen[weekday] {
			return schedule, fmt.Errorf("%w: duplicate day %s", ErrInvalidInput, weekday.Key())
		}
		seen[weekday] = true

		if !in.IsOpen {
			schedule[weekday] = domain.ClosedDay()
			continue
		}

		day := domain.DayHours{IsOpen: true, OpeningTime: in.OpeningTime, ClosingTime: in.ClosingTime}
		if err := day.Validate(); err != nil {
			return schedule, fmt.Errorf("%w: %s: %v", ErrInvalidHours, weekday.Key(), err)
		}
		schedule[weekday] = day.Normalize()
	}

	return schedule, nil
}

package update_day_hours

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет запрос и возвращает день недели и новые часы работы
func validateRequest(req *Request) (domain.Weekday, domain.DayHours, error) {
	if req == nil {
		return 0, domain.DayHours{}, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.SalonID <= 0 {
		return 0, domain.DayHours{}, fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return 0, domain.DayHours{}, fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	weekday, err := domain.ParseWeekday(req.Weekday)
	if err != nil {
		return 0, domain.DayHours{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	day, err := buildDay(req.IsOpen, req.OpeningTime, req.ClosingTime)
	if err != nil {
		return 0, domain.DayHours{}, err
	}

	return weekday, day, nil
}

// buildDay собирает день из тройки (open, close, isOpen).
// Для открытого дня время должно разбираться и open < close
func buildDay(isOpen bool, opening, closing string) (domain.DayHours, error) {
	if !isOpen {
		return domain.ClosedDay(), nil
	}

	day := domain.DayHours{IsOpen: true, OpeningTime: opening, ClosingTime: closing}
	if err := day.Validate(); err != nil {
		return domain.DayHours{}, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}
	return day.Normalize(), nil
}

package get_store_status

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	return nil
}

// weekdaysWithBrokenHours возвращает открытые дни, время которых не парсится
func weekdaysWithBrokenHours(schedule domain.WeeklySchedule) []domain.Weekday {
	var broken []domain.Weekday
	for _, weekday := range domain.AllWeekdays() {
		day := schedule.Day(weekday)
		if !day.IsOpen {
			continue
		}
		if _, _, err := day.Window(); err != nil {
			broken = append(broken, weekday)
		}
	}
	return broken
}

package update_day_hours

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/get_hours"
	updateDayHours "github.com/m04kA/SMC-SalonService/internal/usecase/update_day_hours"
)

// UpdateDayHoursRequest HTTP request model
type UpdateDayHoursRequest struct {
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime"` // "9:00 AM"
	ClosingTime string `json:"closingTime"` // "8:00 PM"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDayHoursRequest) ToUseCaseRequest(userID, salonID int64, weekday string) *updateDayHours.Request {
	return &updateDayHours.Request{
		UserID:      userID,
		SalonID:     salonID,
		Weekday:     weekday,
		IsOpen:      r.IsOpen,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
	}
}

// FromUseCaseResponse возвращает расписание после сохранения
func FromUseCaseResponse(resp *updateDayHours.Response) *get_hours.HoursResponse {
	return get_hours.FromSchedule(resp.SalonID, resp.Schedule)
}

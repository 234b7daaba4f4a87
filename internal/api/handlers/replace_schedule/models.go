package replace_schedule

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/get_hours"
	replaceSchedule "github.com/m04kA/SMC-SalonService/internal/usecase/replace_schedule"
)

// DayRequest часы работы одного дня
type DayRequest struct {
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

// ReplaceScheduleRequest HTTP request model: ровно 7 дней, ключи monday..sunday
type ReplaceScheduleRequest struct {
	Days map[string]DayRequest `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceScheduleRequest) ToUseCaseRequest(userID, salonID int64) *replaceSchedule.Request {
	days := make(map[string]replaceSchedule.DayInput, len(r.Days))
	for key, d := range r.Days {
		days[key] = replaceSchedule.DayInput{
			IsOpen:      d.IsOpen,
			OpeningTime: d.OpeningTime,
			ClosingTime: d.ClosingTime,
		}
	}

	return &replaceSchedule.Request{
		UserID:  userID,
		SalonID: salonID,
		Days:    days,
	}
}

// FromUseCaseResponse возвращает расписание после сохранения
func FromUseCaseResponse(resp *replaceSchedule.Response) *get_hours.HoursResponse {
	return get_hours.FromSchedule(resp.SalonID, resp.Schedule)
}

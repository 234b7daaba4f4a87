package get_hours

import "github.com/m04kA/SMC-SalonService/internal/domain"

// DayHoursResponse часы работы одного дня
type DayHoursResponse struct {
	Key         string `json:"key"`   // monday..sunday
	Label       string `json:"label"` // Monday..Sunday
	IsOpen      bool   `json:"isOpen"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	Display     string `json:"display"` // "10:00 AM — 08:00 PM" или "Closed"
}

// HoursResponse расписание салона, дни по порядку с понедельника
type HoursResponse struct {
	SalonID int64              `json:"salonId"`
	Days    []DayHoursResponse `json:"days"`
}

// FromSchedule конвертирует расписание в HTTP модель
func FromSchedule(salonID int64, schedule domain.WeeklySchedule) *HoursResponse {
	resp := &HoursResponse{
		SalonID: salonID,
		Days:    make([]DayHoursResponse, 0, domain.DaysInWeek),
	}

	for _, w := range domain.AllWeekdays() {
		day := schedule.Day(w)
		resp.Days = append(resp.Days, DayHoursResponse{
			Key:         w.Key(),
			Label:       w.Label(),
			IsOpen:      day.IsOpen,
			OpeningTime: day.OpeningTime,
			ClosingTime: day.ClosingTime,
			Display:     domain.FormatHours(day),
		})
	}

	return resp
}

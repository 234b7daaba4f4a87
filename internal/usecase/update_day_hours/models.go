package update_day_hours

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на изменение часов работы одного дня
type Request struct {
	UserID      int64  // ID пользователя (владелец салона)
	SalonID     int64  // ID салона
	Weekday     string // monday..sunday
	IsOpen      bool   // Открыт ли салон в этот день
	OpeningTime string // "H:MM AM|PM", игнорируется для закрытого дня
	ClosingTime string // "H:MM AM|PM", игнорируется для закрытого дня
}

// Response модель ответа с сохраненным расписанием
type Response struct {
	SalonID  int64
	Weekday  domain.Weekday
	Day      domain.DayHours       // Сохраненный день
	Schedule domain.WeeklySchedule // Расписание после сохранения
}

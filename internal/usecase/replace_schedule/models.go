package replace_schedule

import "github.com/m04kA/SMC-SalonService/internal/domain"

// DayInput часы работы одного дня в запросе
type DayInput struct {
	IsOpen      bool
	OpeningTime string
	ClosingTime string
}

// Request модель запроса на замену расписания целиком
type Request struct {
	UserID  int64               // ID пользователя (владелец салона)
	SalonID int64               // ID салона
	Days    map[string]DayInput // Ровно 7 дней: monday..sunday
}

// Response модель ответа с сохраненным расписанием
type Response struct {
	SalonID  int64
	Schedule domain.WeeklySchedule
}

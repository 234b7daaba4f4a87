package get_store_status

import "time"

// Request модель запроса статуса салона
type Request struct {
	SalonID int64
}

// Response текущий статус салона
type Response struct {
	SalonID  int64
	IsOpen   bool
	Message  string
	NextInfo *string   // nil, если салон закрыт всю неделю
	Now      time.Time // текущее время в часовом поясе салона
	Timezone string
}

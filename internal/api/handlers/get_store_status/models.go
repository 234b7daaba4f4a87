package get_store_status

import (
	"time"

	getStoreStatus "github.com/m04kA/SMC-SalonService/internal/usecase/get_store_status"
)

// StoreStatusResponse HTTP response model
type StoreStatusResponse struct {
	SalonID  int64     `json:"salonId"`
	IsOpen   bool      `json:"isOpen"`
	Message  string    `json:"message"`
	NextInfo *string   `json:"nextInfo"` // null, если салон закрыт всю неделю
	Now      time.Time `json:"now"`      // Текущее время в часовом поясе салона
	Timezone string    `json:"timezone"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getStoreStatus.Response) *StoreStatusResponse {
	return &StoreStatusResponse{
		SalonID:  resp.SalonID,
		IsOpen:   resp.IsOpen,
		Message:  resp.Message,
		NextInfo: resp.NextInfo,
		Now:      resp.Now,
		Timezone: resp.Timezone,
	}
}

package settingsapi

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Settings модель общих настроек салона во внешнем сервисе
// Расписание передается картой weekday -> "hh:mm AM — hh:mm PM" | "Closed"
type Settings struct {
	SalonID      int64             `json:"salon_id"`
	OwnerID      int64             `json:"owner_id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Timezone     string            `json:"timezone"`
	WorkingHours map[string]string `json:"working_hours"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// LocationUpdate тело запроса на обновление адреса и расписания
type LocationUpdate struct {
	Address      *string           `json:"address,omitempty"`
	Timezone     *string           `json:"timezone,omitempty"`
	WorkingHours map[string]string `json:"working_hours,omitempty"`
}

// ErrorResponse модель ошибки от внешнего сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует ответ сервиса в domain модель
func (s *Settings) toDomain() (*domain.GeneralSettings, error) {
	schedule, err := domain.ScheduleFromWorkingHours(s.WorkingHours)
	if err != nil {
		return nil, err
	}

	return &domain.GeneralSettings{
		SalonID:      s.SalonID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Phone:        s.Phone,
		Address:      s.Address,
		Timezone:     s.Timezone,
		WorkingHours: schedule,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

// fromDomain конвертирует domain модель в тело запроса
func fromDomain(s *domain.GeneralSettings) *Settings {
	return &Settings{
		SalonID:      s.SalonID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Phone:        s.Phone,
		Address:      s.Address,
		Timezone:     s.Timezone,
		WorkingHours: s.WorkingHours.WorkingHours(),
	}
}

package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateSalonRequest запрос на создание салона
// WorkingHours опционально: не переданные дни получают расписание по умолчанию
type CreateSalonRequest struct {
	UserID       int64             `json:"-"`
	Role         domain.Role       `json:"-"`
	Name         string            `json:"name" validate:"required,max=120"`
	Phone        string            `json:"phone" validate:"max=32"`
	Address      string            `json:"address" validate:"max=300"`
	Timezone     string            `json:"timezone" validate:"required,timezone"`
	WorkingHours map[string]string `json:"workingHours,omitempty"`
}

// UpdateLocationRequest запрос на частичное обновление адреса, часового пояса и расписания
type UpdateLocationRequest struct {
	UserID       int64             `json:"-"`
	SalonID      int64             `json:"-"`
	Address      *string           `json:"address,omitempty"`
	Timezone     *string           `json:"timezone,omitempty"`
	WorkingHours map[string]string `json:"workingHours,omitempty"`
}

// Response модели

// SettingsResponse общие настройки салона
type SettingsResponse struct {
	SalonID      int64             `json:"salonId"`
	OwnerID      int64             `json:"ownerId"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Timezone     string            `json:"timezone"`
	WorkingHours map[string]string `json:"workingHours"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.GeneralSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		SalonID:      s.SalonID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Phone:        s.Phone,
		Address:      s.Address,
		Timezone:     s.Timezone,
		WorkingHours: s.WorkingHours.WorkingHours(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToLocationInfo конвертирует запрос в domain модель
func (r *UpdateLocationRequest) ToLocationInfo() domain.LocationInfo {
	return domain.LocationInfo{
		Address:      r.Address,
		Timezone:     r.Timezone,
		WorkingHours: r.WorkingHours,
	}
}

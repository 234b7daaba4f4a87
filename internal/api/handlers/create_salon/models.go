package create_salon

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

// CreateSalonRequest HTTP request model
type CreateSalonRequest struct {
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Timezone     string            `json:"timezone"`               // IANA, по умолчанию UTC
	WorkingHours map[string]string `json:"workingHours,omitempty"` // weekday -> "10:00 AM — 08:00 PM" | "Closed"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSalonRequest) ToServiceRequest(userID int64, role domain.Role) *models.CreateSalonRequest {
	return &models.CreateSalonRequest{
		UserID:       userID,
		Role:         role,
		Name:         r.Name,
		Phone:        r.Phone,
		Address:      r.Address,
		Timezone:     r.Timezone,
		WorkingHours: r.WorkingHours,
	}
}

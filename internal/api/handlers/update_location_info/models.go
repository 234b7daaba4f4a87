package update_location_info

import "github.com/m04kA/SMC-SalonService/internal/service/settings/models"

// UpdateLocationRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateLocationRequest struct {
	Address      *string           `json:"address,omitempty"`
	Timezone     *string           `json:"timezone,omitempty"`
	WorkingHours map[string]string `json:"workingHours,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateLocationRequest) ToServiceRequest(userID, salonID int64) *models.UpdateLocationRequest {
	return &models.UpdateLocationRequest{
		UserID:       userID,
		SalonID:      salonID,
		Address:      r.Address,
		Timezone:     r.Timezone,
		WorkingHours: r.WorkingHours,
	}
}

package update_location_info

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

type SettingsService interface {
	UpdateLocationInfo(ctx context.Context, req *models.UpdateLocationRequest) (*domain.GeneralSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

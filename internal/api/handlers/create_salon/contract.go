package create_salon

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

type SettingsService interface {
	CreateSalon(ctx context.Context, req *models.CreateSalonRequest) (*domain.GeneralSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

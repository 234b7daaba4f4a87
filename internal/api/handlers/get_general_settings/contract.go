package get_general_settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SettingsService interface {
	GetGeneralSettings(ctx context.Context, salonID int64) (*domain.GeneralSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_day_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек салона
type SettingsRepository interface {
	Get(ctx context.Context, salonID int64) (*domain.GeneralSettings, error)
	UpdateLocation(ctx context.Context, salonID int64, info domain.LocationInfo) (*domain.GeneralSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

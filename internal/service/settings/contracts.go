package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек салона.
// Реализации: postgres репозиторий и клиент внешнего settings API
type SettingsRepository interface {
	Create(ctx context.Context, settings *domain.GeneralSettings) (*domain.GeneralSettings, error)
	Get(ctx context.Context, salonID int64) (*domain.GeneralSettings, error)
	UpdateLocation(ctx context.Context, salonID int64, info domain.LocationInfo) (*domain.GeneralSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

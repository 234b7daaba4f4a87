package get_store_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SettingsProvider источник настроек салона (БД или внешний settings API)
type SettingsProvider interface {
	GetGeneralSettings(ctx context.Context, salonID int64) (*domain.GeneralSettings, error)
}

// StatusRecorder счетчик вычисленных статусов (метрики)
type StatusRecorder interface {
	IncStoreStatus(isOpen bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

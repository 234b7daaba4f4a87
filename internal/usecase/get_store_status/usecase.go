package get_store_status

import (
	"context"
	"errors"
	"fmt"

	settingsService "github.com/m04kA/SMC-SalonService/internal/service/settings"
)

// UseCase use case для получения текущего статуса салона (открыт/закрыт)
type UseCase struct {
	settings     SettingsProvider
	recorder     StatusRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. recorder может быть nil.
func NewUseCase(
	settings SettingsProvider,
	recorder StatusRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:     settings,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения статуса салона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStoreStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки салона
	settings, err := uc.settings.GetGeneralSettings(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, settingsService.ErrSettingsNotFound) {
			uc.logger.Warn("GetStoreStatus: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetStoreStatus: failed to get settings for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Предупреждаем о днях, которые не удастся учесть
	for _, weekday := range weekdaysWithBrokenHours(settings.WorkingHours) {
		uc.logger.Warn("GetStoreStatus: salon id=%d has unparsable hours on %s, treating as closed",
			req.SalonID, weekday)
	}

	// 4. Переводим текущее время в часовой пояс салона и считаем статус
	now := uc.timeProvider.Now().In(settings.Location())
	status := GetStoreStatus(now, settings.WorkingHours)

	if uc.recorder != nil {
		uc.recorder.IncStoreStatus(status.IsOpen)
	}

	uc.logger.Info("GetStoreStatus: salon id=%d is_open=%t at %s (%s)",
		req.SalonID, status.IsOpen, now.Format("2006-01-02 15:04"), settings.Location())

	return &Response{
		SalonID:  req.SalonID,
		IsOpen:   status.IsOpen,
		Message:  status.Message,
		NextInfo: status.NextInfo,
		Now:      now,
		Timezone: settings.Location().String(),
	}, nil
}

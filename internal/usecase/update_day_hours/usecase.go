package update_day_hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonService/internal/integrations/settingsapi"
)

// UseCase use case для изменения часов работы одного дня недели
type UseCase struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет read-modify-write расписания в сериализуемой транзакции
// При ошибке валидации ничего не записывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	weekday, day, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateDayHours: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateDayHours: salon=%d, user=%d, %s -> %s",
		req.SalonID, req.UserID, weekday.Key(), domain.FormatHours(day))

	var result *domain.GeneralSettings

	// 2. Читаем, меняем и сохраняем расписание в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущие настройки
		settings, err := uc.settingsRepo.Get(txCtx, req.SalonID)
		if err != nil {
			if isNotFound(err) {
				uc.logger.Warn("UpdateDayHours: salon id=%d not found", req.SalonID)
				return ErrSalonNotFound
			}
			uc.logger.Error("UpdateDayHours: failed to get salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 2.2. Проверяем права доступа (только владелец салона)
		if !settings.IsOwner(req.UserID) {
			uc.logger.Warn("UpdateDayHours: user=%d is not an owner of salon=%d", req.UserID, req.SalonID)
			return ErrAccessDenied
		}

		// 2.3. Заменяем один день и сохраняем расписание целиком (все 7 дней)
		schedule := settings.WorkingHours.WithDay(weekday, day)
		info := domain.LocationInfo{
			WorkingHours: schedule.WorkingHours(),
		}

		result, err = uc.settingsRepo.UpdateLocation(txCtx, req.SalonID, info)
		if err != nil {
			uc.logger.Error("UpdateDayHours: failed to save schedule for salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSalonNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		// Ошибки начала и фиксации транзакции
		uc.logger.Error("UpdateDayHours: transaction failed for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateDayHours: saved %s for salon id=%d", weekday.Key(), req.SalonID)

	return &Response{
		SalonID:  req.SalonID,
		Weekday:  weekday,
		Day:      result.WorkingHours.Day(weekday),
		Schedule: result.WorkingHours,
	}, nil
}

// isNotFound распознает "не найдено" от любого хранилища настроек
func isNotFound(err error) bool {
	return errors.Is(err, settingsRepo.ErrSettingsNotFound) || errors.Is(err, settingsapi.ErrSettingsNotFound)
}

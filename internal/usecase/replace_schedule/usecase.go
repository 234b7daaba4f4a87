package replace_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonService/internal/integrations/settingsapi"
)

// UseCase use case для замены недельного расписания салона целиком
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

// Execute выполняет use case замены расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация всех семи дней
	schedule, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ReplaceSchedule: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReplaceSchedule: salon=%d, user=%d", req.SalonID, req.UserID)

	var result *domain.GeneralSettings

	// 2. Проверка прав и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		settings, err := uc.settingsRepo.Get(txCtx, req.SalonID)
		if err != nil {
			if errors.Is(err, settingsRepo.ErrSettingsNotFound) || errors.Is(err, settingsapi.ErrSettingsNotFound) {
				uc.logger.Warn("ReplaceSchedule: salon id=%d not found", req.SalonID)
				return ErrSalonNotFound
			}
			uc.logger.Error("ReplaceSchedule: failed to get salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		if !settings.IsOwner(req.UserID) {
			uc.logger.Warn("ReplaceSchedule: user=%d is not an owner of salon=%d", req.UserID, req.SalonID)
			return ErrAccessDenied
		}

		result, err = uc.settingsRepo.UpdateLocation(txCtx, req.SalonID, domain.LocationInfo{
			WorkingHours: schedule.WorkingHours(),
		})
		if err != nil {
			uc.logger.Error("ReplaceSchedule: failed to save schedule for salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSalonNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("ReplaceSchedule: transaction failed for salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ReplaceSchedule: saved schedule for salon id=%d, closed all week: %t",
		req.SalonID, result.WorkingHours.IsClosedAllWeek())

	return &Response{
		SalonID:  req.SalonID,
		Schedule: result.WorkingHours,
	}, nil
}

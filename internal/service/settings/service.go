package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SalonService/internal/integrations/settingsapi"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

// Service сервис общих настроек салона
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	validate  *validator.Validate
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	repo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		validate:  newValidator(),
		logger:    logger,
	}
}

// CreateSalon создает салон с расписанием по умолчанию
// Доступно только пользователям с ролью owner, создатель становится владельцем
func (s *Service) CreateSalon(ctx context.Context, req *models.CreateSalonRequest) (*domain.GeneralSettings, error) {
	s.logger.Info("CreateSalon: creating salon %q by user=%d", req.Name, req.UserID)

	// 1. Проверяем роль
	if req.Role != domain.RoleOwner {
		s.logger.Warn("CreateSalon: user=%d with role=%q is not an owner", req.UserID, req.Role)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	if err := s.validateSalonData(req); err != nil {
		s.logger.Warn("CreateSalon: validation failed: %v", err)
		return nil, err
	}

	schedule, err := domain.ScheduleFromWorkingHoursStrict(domain.DefaultWeeklySchedule(), req.WorkingHours)
	if err != nil {
		s.logger.Warn("CreateSalon: invalid working hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, weekday := range domain.AllWeekdays() {
		schedule[weekday] = schedule[weekday].Normalize()
	}

	settings := &domain.GeneralSettings{
		OwnerID:      req.UserID,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Timezone:     req.Timezone,
		WorkingHours: schedule,
	}

	// 3. Создаем настройки и расписание в одной транзакции
	var created *domain.GeneralSettings
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, settings)
		return err
	})
	if err != nil {
		s.logger.Error("CreateSalon: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSalon: successfully created salon id=%d owner=%d", created.SalonID, created.OwnerID)
	return created, nil
}

// GetGeneralSettings получает общие настройки салона
// Публичный метод - доступен всем
func (s *Service) GetGeneralSettings(ctx context.Context, salonID int64) (*domain.GeneralSettings, error) {
	s.logger.Info("GetGeneralSettings: fetching settings for salon id=%d", salonID)

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}

	settings, err := s.repo.Get(ctx, salonID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("GetGeneralSettings: salon id=%d not found", salonID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetGeneralSettings: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetGeneralSettings - repository error: %v", ErrInternal, err)
	}

	return settings, nil
}

// UpdateLocationInfo частично обновляет адрес, часовой пояс и расписание салона
// Доступно только владельцу салона. Расписание проверяется целиком до записи
func (s *Service) UpdateLocationInfo(ctx context.Context, req *models.UpdateLocationRequest) (*domain.GeneralSettings, error) {
	s.logger.Info("UpdateLocationInfo: updating salon id=%d by user=%d", req.SalonID, req.UserID)

	// 1. Валидируем входные данные
	info, err := s.validateLocation(req)
	if err != nil {
		s.logger.Warn("UpdateLocationInfo: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.GeneralSettings
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Получаем текущие настройки для проверки прав
		current, err := s.repo.Get(txCtx, req.SalonID)
		if err != nil {
			if isNotFound(err) {
				s.logger.Warn("UpdateLocationInfo: salon id=%d not found", req.SalonID)
				return ErrSettingsNotFound
			}
			s.logger.Error("UpdateLocationInfo: failed to get salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 3. Проверяем права доступа (только владелец салона)
		if !current.IsOwner(req.UserID) {
			s.logger.Warn("UpdateLocationInfo: user=%d is not an owner of salon=%d", req.UserID, req.SalonID)
			return ErrAccessDenied
		}

		// 4. Сохраняем изменения
		updated, err = s.repo.UpdateLocation(txCtx, req.SalonID, info)
		if err != nil {
			if isNotFound(err) {
				return ErrSettingsNotFound
			}
			s.logger.Error("UpdateLocationInfo: repository error for salon id=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: UpdateLocationInfo - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateLocationInfo: successfully updated salon id=%d", req.SalonID)
	return updated, nil
}

// isNotFound распознает "не найдено" от любого хранилища настроек
func isNotFound(err error) bool {
	return errors.Is(err, settingsRepo.ErrSettingsNotFound) ||
		errors.Is(err, settingsapi.ErrSettingsNotFound) ||
		errors.Is(err, ErrSettingsNotFound)
}

package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/kvstore"
)

const keyPrefix = "prefs"

// Service сервис пользовательских настроек
type Service struct {
	store  Store
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек пользователя
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetNotification настройки уведомлений, по умолчанию push, email и напоминания включены
func (s *Service) GetNotification(ctx context.Context, userID int64) (domain.NotificationPreferences, error) {
	return load(ctx, s, userID, domain.NamespaceNotification, domain.DefaultNotificationPreferences())
}

// SetNotification сохраняет настройки уведомлений
func (s *Service) SetNotification(ctx context.Context, userID int64, prefs domain.NotificationPreferences) error {
	return save(ctx, s, userID, domain.NamespaceNotification, prefs)
}

// GetPrivacy настройки приватности
func (s *Service) GetPrivacy(ctx context.Context, userID int64) (domain.PrivacyPreferences, error) {
	return load(ctx, s, userID, domain.NamespacePrivacy, domain.DefaultPrivacyPreferences())
}

// SetPrivacy сохраняет настройки приватности
func (s *Service) SetPrivacy(ctx context.Context, userID int64, prefs domain.PrivacyPreferences) error {
	return save(ctx, s, userID, domain.NamespacePrivacy, prefs)
}

// GetService избранные услуги и предпочитаемый мастер
func (s *Service) GetService(ctx context.Context, userID int64) (domain.ServicePreferences, error) {
	prefs, err := load(ctx, s, userID, domain.NamespaceService, domain.DefaultServicePreferences())
	if err != nil {
		return prefs, err
	}
	if prefs.FavoriteServiceIDs == nil {
		prefs.FavoriteServiceIDs = []int64{}
	}
	return prefs, nil
}

// SetService сохраняет избранные услуги. Повторы удаляются с сохранением порядка
func (s *Service) SetService(ctx context.Context, userID int64, prefs domain.ServicePreferences) error {
	normalized, err := normalizeServicePreferences(prefs)
	if err != nil {
		s.logger.Warn("SetService: validation failed for user=%d: %v", userID, err)
		return err
	}
	return save(ctx, s, userID, domain.NamespaceService, normalized)
}

// Get возвращает настройки произвольного набора по имени
func (s *Service) Get(ctx context.Context, userID int64, namespace domain.PreferenceNamespace) (interface{}, error) {
	switch namespace {
	case domain.NamespaceNotification:
		return s.GetNotification(ctx, userID)
	case domain.NamespacePrivacy:
		return s.GetPrivacy(ctx, userID)
	case domain.NamespaceService:
		return s.GetService(ctx, userID)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, namespace)
}

// Set декодирует JSON и сохраняет настройки набора. Возвращает сохраненное значение
func (s *Service) Set(ctx context.Context, userID int64, namespace domain.PreferenceNamespace, raw json.RawMessage) (interface{}, error) {
	switch namespace {
	case domain.NamespaceNotification:
		prefs := domain.DefaultNotificationPreferences()
		if err := decode(raw, &prefs); err != nil {
			return nil, err
		}
		if err := s.SetNotification(ctx, userID, prefs); err != nil {
			return nil, err
		}
		return prefs, nil
	case domain.NamespacePrivacy:
		prefs := domain.DefaultPrivacyPreferences()
		if err := decode(raw, &prefs); err != nil {
			return nil, err
		}
		if err := s.SetPrivacy(ctx, userID, prefs); err != nil {
			return nil, err
		}
		return prefs, nil
	case domain.NamespaceService:
		prefs := domain.DefaultServicePreferences()
		if err := decode(raw, &prefs); err != nil {
			return nil, err
		}
		if err := s.SetService(ctx, userID, prefs); err != nil {
			return nil, err
		}
		return s.GetService(ctx, userID)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, namespace)
}

// Reset удаляет сохраненные настройки набора, после чего Get вернет значения по умолчанию
func (s *Service) Reset(ctx context.Context, userID int64, namespace domain.PreferenceNamespace) error {
	if !namespace.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownNamespace, namespace)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	if err := s.store.Delete(ctx, storeKey(namespace, userID)); err != nil {
		s.logger.Error("Reset: failed to delete %s preferences for user=%d: %v", namespace, userID, err)
		return fmt.Errorf("%w: Reset - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: %s preferences reset for user=%d", namespace, userID)
	return nil
}

// load читает и декодирует JSON значение, при отсутствии ключа возвращает def
func load[T any](ctx context.Context, s *Service, userID int64, namespace domain.PreferenceNamespace, def T) (T, error) {
	if userID <= 0 {
		return def, fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	raw, err := s.store.Get(ctx, storeKey(namespace, userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		s.logger.Error("load: failed to read %s preferences for user=%d: %v", namespace, userID, err)
		return def, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	value := def
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		// Поврежденное значение не ломает чтение настроек
		s.logger.Warn("load: corrupted %s preferences for user=%d, using defaults: %v", namespace, userID, err)
		return def, nil
	}

	return value, nil
}

// save кодирует значение в JSON и записывает его
func save[T any](ctx context.Context, s *Service, userID int64, namespace domain.PreferenceNamespace, value T) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to encode preferences: %v", ErrInternal, err)
	}

	if err := s.store.Set(ctx, storeKey(namespace, userID), string(payload)); err != nil {
		s.logger.Error("save: failed to write %s preferences for user=%d: %v", namespace, userID, err)
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	s.logger.Info("save: %s preferences saved for user=%d", namespace, userID)
	return nil
}

func decode(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidInput)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidInput, err)
	}
	return nil
}

func normalizeServicePreferences(prefs domain.ServicePreferences) (domain.ServicePreferences, error) {
	seen := make(map[int64]bool, len(prefs.FavoriteServiceIDs))
	ids := make([]int64, 0, len(prefs.FavoriteServiceIDs))

	for _, id := range prefs.FavoriteServiceIDs {
		if id <= 0 {
			return prefs, fmt.Errorf("%w: service id must be positive, got %d", ErrInvalidInput, id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) > domain.MaxFavoriteServices {
		return prefs, fmt.Errorf("%w: at most %d favorite services allowed", ErrInvalidInput, domain.MaxFavoriteServices)
	}
	if prefs.PreferredEmployeeID != nil && *prefs.PreferredEmployeeID <= 0 {
		return prefs, fmt.Errorf("%w: preferred employee id must be positive", ErrInvalidInput)
	}

	prefs.FavoriteServiceIDs = ids
	return prefs, nil
}

// storeKey ключ вида prefs:{namespace}:{userID}
func storeKey(namespace domain.PreferenceNamespace, userID int64) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, namespace, userID)
}

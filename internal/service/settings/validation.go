package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

// newValidator в сообщениях об ошибках поля называются по json тегу
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError переводит ошибки validator в ErrInvalidInput с перечнем полей
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

// validateSalonData нормализует и проверяет основные поля нового салона
func (s *Service) validateSalonData(req *models.CreateSalonRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Timezone = strings.TrimSpace(req.Timezone)
	if req.Timezone == "" {
		req.Timezone = domain.DefaultTimezone
	}

	if err := s.validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// validateLocation проверяет запрос и возвращает нормализованное обновление
func (s *Service) validateLocation(req *models.UpdateLocationRequest) (domain.LocationInfo, error) {
	if req.SalonID <= 0 {
		return domain.LocationInfo{}, fmt.Errorf("%w: salon_id must be positive", ErrInvalidInput)
	}
	if req.Address == nil && req.Timezone == nil && len(req.WorkingHours) == 0 {
		return domain.LocationInfo{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	info := req.ToLocationInfo()

	if info.Address != nil {
		address := strings.TrimSpace(*info.Address)
		if err := s.validate.Var(address, fmt.Sprintf("max=%d", domain.MaxAddressLength)); err != nil {
			return domain.LocationInfo{}, fmt.Errorf("%w: address must be at most %d characters",
				ErrInvalidInput, domain.MaxAddressLength)
		}
		info.Address = &address
	}

	if info.Timezone != nil {
		// required отсекает пустую строку, которую time.LoadLocation принимает как UTC
		if err := s.validate.Var(*info.Timezone, "required,timezone"); err != nil {
			return domain.LocationInfo{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, *info.Timezone)
		}
	}

	if len(info.WorkingHours) > 0 {
		normalized := make(map[string]string, len(info.WorkingHours))
		for key, raw := range info.WorkingHours {
			weekday, err := domain.ParseWeekday(key)
			if err != nil {
				return domain.LocationInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			day, err := domain.ParseHoursStringStrict(raw)
			if err != nil {
				return domain.LocationInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, weekday.Key(), err)
			}
			normalized[weekday.Key()] = domain.FormatHours(day.Normalize())
		}
		info.WorkingHours = normalized
	}

	return info, nil
}

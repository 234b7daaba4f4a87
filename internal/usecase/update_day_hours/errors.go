package update_day_hours

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("update_day_hours: salon not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец салона
	ErrAccessDenied = errors.New("update_day_hours: access denied")

	// ErrInvalidHours возвращается, когда время открытия не раньше времени закрытия
	// или время не удалось разобрать
	ErrInvalidHours = errors.New("update_day_hours: invalid hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_day_hours: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_day_hours: internal error")
)

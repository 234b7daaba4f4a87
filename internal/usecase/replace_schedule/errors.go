package replace_schedule

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("replace_schedule: salon not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец салона
	ErrAccessDenied = errors.New("replace_schedule: access denied")

	// ErrInvalidHours возвращается, когда хотя бы один открытый день не проходит проверку
	ErrInvalidHours = errors.New("replace_schedule: invalid hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("replace_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("replace_schedule: internal error")
)

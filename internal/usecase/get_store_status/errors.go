package get_store_status

import "errors"

var (
	// ErrSalonNotFound возвращается, когда настройки салона не найдены
	ErrSalonNotFound = errors.New("salon not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

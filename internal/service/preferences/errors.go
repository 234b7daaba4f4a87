package preferences

import "errors"

var (
	// ErrUnknownNamespace возвращается для неизвестного набора настроек
	ErrUnknownNamespace = errors.New("unknown preferences namespace")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package settingsapi

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда салон не найден во внешнем сервисе
	ErrSettingsNotFound = errors.New("settingsapi client: settings not found")

	// ErrInvalidRequest возвращается, когда сервис отклонил запрос (400)
	ErrInvalidRequest = errors.New("settingsapi client: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("settingsapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("settingsapi client: invalid response")
)

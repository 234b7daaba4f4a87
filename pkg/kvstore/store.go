package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("kvstore: store unavailable")
)

// Store строковое key/value хранилище
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FallbackObserver получает уведомление каждый раз, когда операция обслужена резервным хранилищем
type FallbackObserver interface {
	IncPreferenceFallback(operation string)
}

package kvstore

import (
	"context"
	"errors"
	"sync"
)

// FallbackStore пробует постоянное хранилище и переключается на память процесса,
// если постоянное хранилище не отвечает.
//
// В памяти живут только записи, которые не удалось отправить в primary
// (значения и удаления). Пока такая запись ждет, Get отдает ее вместо primary
// и пробует дописать в primary. После успешной записи память очищается.
type FallbackStore struct {
	primary  Store
	fallback *MemoryStore
	observer FallbackObserver
	logger   Logger

	// mu сериализует записи и дозапись ожидающих ключей
	mu sync.Mutex
	// deleted удаления, которые primary не принял
	deleted map[string]struct{}
}

// NewFallbackStore создает хранилище с резервом в памяти. primary может быть nil -
// тогда используется только память.
func NewFallbackStore(primary Store, observer FallbackObserver, logger Logger) *FallbackStore {
	return &FallbackStore{
		primary:  primary,
		fallback: NewMemoryStore(),
		observer: observer,
		logger:   logger,
		deleted:  make(map[string]struct{}),
	}
}

func (s *FallbackStore) Get(ctx context.Context, key string) (string, error) {
	if s.primary == nil {
		return s.fallback.Get(ctx, key)
	}

	s.mu.Lock()
	if v, err := s.fallback.Get(ctx, key); err == nil {
		defer s.mu.Unlock()
		if err := s.primary.Set(ctx, key, v); err != nil {
			s.degraded("get", key, err)
			return v, nil
		}
		_ = s.fallback.Delete(ctx, key)
		s.logger.Info("kvstore: pending key=%s written back to primary", key)
		return v, nil
	}
	if _, ok := s.deleted[key]; ok {
		defer s.mu.Unlock()
		if err := s.primary.Delete(ctx, key); err != nil {
			s.degraded("get", key, err)
			return "", ErrNotFound
		}
		delete(s.deleted, key)
		s.logger.Info("kvstore: pending delete key=%s written back to primary", key)
		return "", ErrNotFound
	}
	s.mu.Unlock()

	v, err := s.primary.Get(ctx, key)
	if err == nil || errors.Is(err, ErrNotFound) {
		return v, err
	}

	s.degraded("get", key, err)
	return "", ErrNotFound
}

func (s *FallbackStore) Set(ctx context.Context, key string, value string) error {
	if s.primary == nil {
		return s.fallback.Set(ctx, key, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deleted, key)
	if err := s.primary.Set(ctx, key, value); err != nil {
		s.degraded("set", key, err)
		return s.fallback.Set(ctx, key, value)
	}
	return s.fallback.Delete(ctx, key)
}

func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	if s.primary == nil {
		return s.fallback.Delete(ctx, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.fallback.Delete(ctx, key)
	if err := s.primary.Delete(ctx, key); err != nil {
		s.degraded("delete", key, err)
		s.deleted[key] = struct{}{}
		return nil
	}
	delete(s.deleted, key)
	return nil
}

// Pending количество записей, ожидающих дозаписи в primary
func (s *FallbackStore) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback.Len() + len(s.deleted)
}

func (s *FallbackStore) degraded(op, key string, err error) {
	s.logger.Warn("kvstore: %s key=%s served from memory: %v", op, key, err)
	if s.observer != nil {
		s.observer.IncPreferenceFallback(op)
	}
}

package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/kvstore"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("boom")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("boom")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("boom")
}

func newService() (*Service, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	return NewService(store, nopLogger{}), store
}

func TestService_Defaults(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	notif, err := svc.GetNotification(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationPreferences(), notif)

	privacy, err := svc.GetPrivacy(ctx, 1)
	require.NoError(t, err)
	assert.True(t, privacy.ProfileVisible)
	assert.False(t, privacy.AllowAnalytics)

	service, err := svc.GetService(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, service.FavoriteServiceIDs)
	assert.Empty(t, service.FavoriteServiceIDs)
}

func TestService_SetAndGet(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	prefs := domain.NotificationPreferences{SMSEnabled: true}
	require.NoError(t, svc.SetNotification(ctx, 5, prefs))

	got, err := svc.GetNotification(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	raw, err := store.Get(ctx, "prefs:notification:5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pushEnabled":false,"emailEnabled":false,"smsEnabled":true,"bookingReminders":false,"promotions":false}`, raw)

	// настройки других пользователей не затронуты
	other, err := svc.GetNotification(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationPreferences(), other)
}

func TestService_SetService_Normalizes(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	err := svc.SetService(ctx, 1, domain.ServicePreferences{
		FavoriteServiceIDs:  []int64{3, 1, 3, 2, 1},
		PreferredEmployeeID: ptr.Ptr(int64(9)),
	})
	require.NoError(t, err)

	got, err := svc.GetService(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, got.FavoriteServiceIDs)
	assert.Equal(t, int64(9), ptr.Value(got.PreferredEmployeeID))
}

func TestService_SetService_Validation(t *testing.T) {
	svc, _ := newService()

	tooMany := make([]int64, domain.MaxFavoriteServices+1)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}

	tests := []struct {
		name  string
		prefs domain.ServicePreferences
	}{
		{name: "too many favorites", prefs: domain.ServicePreferences{FavoriteServiceIDs: tooMany}},
		{name: "non positive id", prefs: domain.ServicePreferences{FavoriteServiceIDs: []int64{0}}},
		{name: "bad employee", prefs: domain.ServicePreferences{PreferredEmployeeID: ptr.Ptr(int64(-1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetService(context.Background(), 1, tt.prefs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GenericSetGetReset(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	saved, err := svc.Set(ctx, 2, domain.NamespacePrivacy, json.RawMessage(`{"allowAnalytics":true}`))
	require.NoError(t, err)
	// не переданные поля получают значения по умолчанию
	assert.Equal(t, domain.PrivacyPreferences{ProfileVisible: true, AllowAnalytics: true}, saved)

	got, err := svc.Get(ctx, 2, domain.NamespacePrivacy)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, svc.Reset(ctx, 2, domain.NamespacePrivacy))

	got, err = svc.Get(ctx, 2, domain.NamespacePrivacy)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPrivacyPreferences(), got)
}

func TestService_GenericErrors(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, "billing")
	assert.ErrorIs(t, err, ErrUnknownNamespace)

	_, err = svc.Set(ctx, 1, "billing", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownNamespace)

	_, err = svc.Set(ctx, 1, domain.NamespaceNotification, json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Set(ctx, 1, domain.NamespaceNotification, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Get(ctx, 0, domain.NamespaceNotification)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CorruptedValueFallsBackToDefaults(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "prefs:notification:3", "{broken"))

	got, err := svc.GetNotification(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationPreferences(), got)
}

func TestService_StoreFailure(t *testing.T) {
	svc := NewService(failingStore{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetPrivacy(ctx, 1)
	assert.ErrorIs(t, err, ErrInternal)

	err = svc.SetPrivacy(ctx, 1, domain.PrivacyPreferences{})
	assert.ErrorIs(t, err, ErrInternal)

	err = svc.Reset(ctx, 1, domain.NamespacePrivacy)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_WithFallbackStore(t *testing.T) {
	// сбой основного хранилища не должен быть виден пользователю
	svc := NewService(kvstore.NewFallbackStore(failingStore{}, nil, nopLogger{}), nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.SetNotification(ctx, 1, domain.NotificationPreferences{Promotions: true}))

	got, err := svc.GetNotification(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Promotions)
}

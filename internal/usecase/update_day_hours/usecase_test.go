package update_day_hours

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTx struct {
	calls     int
	commitErr error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fakeRepo struct {
	settings  *domain.GeneralSettings
	getErr    error
	updateErr error
	saved     []domain.LocationInfo
}

func (r *fakeRepo) Get(context.Context, int64) (*domain.GeneralSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeRepo) UpdateLocation(_ context.Context, _ int64, info domain.LocationInfo) (*domain.GeneralSettings, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.saved = append(r.saved, info)
	for key, raw := range info.WorkingHours {
		w, _ := domain.ParseWeekday(key)
		r.settings.WorkingHours[w] = domain.ParseHoursString(raw)
	}
	cp := *r.settings
	return &cp, nil
}

func newRepo() *fakeRepo {
	s := domain.DefaultGeneralSettings(7)
	s.OwnerID = 42
	return &fakeRepo{settings: s}
}

func TestUseCase_Execute_OpenDay(t *testing.T) {
	repo := newRepo()
	tx := &fakeTx{}
	uc := NewUseCase(repo, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      42,
		SalonID:     7,
		Weekday:     "Tuesday",
		IsOpen:      true,
		OpeningTime: "9:00 AM",
		ClosingTime: "6:30 PM",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, domain.Tuesday, resp.Weekday)
	assert.Equal(t, domain.DayHours{IsOpen: true, OpeningTime: "09:00 AM", ClosingTime: "06:30 PM"}, resp.Day)
	// сохраняется полная карта расписания, остальные дни не меняются
	require.Len(t, repo.saved, 1)
	assert.Len(t, repo.saved[0].WorkingHours, domain.DaysInWeek)
	assert.Equal(t, "09:00 AM — 06:30 PM", repo.saved[0].WorkingHours["tuesday"])
	assert.Equal(t, "10:00 AM — 08:00 PM", repo.saved[0].WorkingHours["monday"])
	assert.Equal(t, domain.DefaultDayHours(), resp.Schedule.Day(domain.Monday))
}

func TestUseCase_Execute_SendsFullScheduleKeepingOtherDays(t *testing.T) {
	repo := newRepo()
	repo.settings.WorkingHours[domain.Sunday] = domain.ClosedDay()
	repo.settings.WorkingHours[domain.Friday] = domain.DayHours{IsOpen: true, OpeningTime: "11:00 AM", ClosingTime: "11:00 PM"}
	uc := NewUseCase(repo, &fakeTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, SalonID: 7, Weekday: "monday", IsOpen: true,
		OpeningTime: "9:00 AM", ClosingTime: "5:00 PM",
	})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	hours := repo.saved[0].WorkingHours
	assert.Len(t, hours, domain.DaysInWeek)
	assert.Equal(t, "09:00 AM — 05:00 PM", hours["monday"])
	assert.Equal(t, "11:00 AM — 11:00 PM", hours["friday"])
	assert.Equal(t, "Closed", hours["sunday"])
}

func TestUseCase_Execute_CloseDay(t *testing.T) {
	repo := newRepo()
	uc := NewUseCase(repo, &fakeTx{}, nopLogger{})

	// время закрытого дня не проверяется
	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42, SalonID: 7, Weekday: "sunday", IsOpen: false,
		OpeningTime: "garbage", ClosingTime: "",
	})
	require.NoError(t, err)

	assert.False(t, resp.Day.IsOpen)
	assert.Equal(t, "Closed", repo.saved[0].WorkingHours["sunday"])
}

func TestUseCase_Execute_InvalidHoursWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
	}{
		{name: "open after close", opening: "08:00 PM", closing: "10:00 AM"},
		{name: "equal times", opening: "10:00 AM", closing: "10:00 AM"},
		{name: "unparsable opening", opening: "25:00 AM", closing: "10:00 PM"},
		{name: "missing meridiem", opening: "10:00", closing: "08:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			tx := &fakeTx{}
			uc := NewUseCase(repo, tx, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				UserID: 42, SalonID: 7, Weekday: "monday", IsOpen: true,
				OpeningTime: tt.opening, ClosingTime: tt.closing,
			})

			assert.ErrorIs(t, err, ErrInvalidHours)
			assert.Zero(t, tx.calls)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		setup   func(r *fakeRepo, tx *fakeTx)
		wantErr error
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown weekday",
			req:     &Request{UserID: 42, SalonID: 7, Weekday: "funday"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "not owner",
			req:     &Request{UserID: 1, SalonID: 7, Weekday: "monday"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "salon not found",
			req:     &Request{UserID: 42, SalonID: 7, Weekday: "monday"},
			setup:   func(r *fakeRepo, _ *fakeTx) { r.getErr = settingsRepo.ErrSettingsNotFound },
			wantErr: ErrSalonNotFound,
		},
		{
			name:    "persist failure",
			req:     &Request{UserID: 42, SalonID: 7, Weekday: "monday"},
			setup:   func(r *fakeRepo, _ *fakeTx) { r.updateErr = errors.New("disk full") },
			wantErr: ErrInternal,
		},
		{
			name:    "commit failure",
			req:     &Request{UserID: 42, SalonID: 7, Weekday: "monday"},
			setup:   func(_ *fakeRepo, tx *fakeTx) { tx.commitErr = errors.New("serialization failure") },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			tx := &fakeTx{}
			if tt.setup != nil {
				tt.setup(repo, tx)
			}

			_, err := NewUseCase(repo, tx, nopLogger{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_PersistFailureKeepsSchedule(t *testing.T) {
	repo := newRepo()
	repo.updateErr = errors.New("disk full")
	before := repo.settings.WorkingHours

	_, err := NewUseCase(repo, &fakeTx{}, nopLogger{}).Execute(context.Background(), &Request{
		UserID: 42, SalonID: 7, Weekday: "friday", IsOpen: false,
	})

	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, before, repo.settings.WorkingHours)
}

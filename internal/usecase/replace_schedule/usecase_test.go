package replace_schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/settingsapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passTx struct{ calls int }

func (p *passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
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
	schedule, err := domain.ScheduleFromWorkingHours(info.WorkingHours)
	if err != nil {
		return nil, err
	}
	r.settings.WorkingHours = schedule
	cp := *r.settings
	return &cp, nil
}

func newRepo() *fakeRepo {
	s := domain.DefaultGeneralSettings(7)
	s.OwnerID = 42
	return &fakeRepo{settings: s}
}

func fullWeek() map[string]DayInput {
	days := make(map[string]DayInput, domain.DaysInWeek)
	for _, w := range domain.AllWeekdays() {
		days[w.Key()] = DayInput{IsOpen: true, OpeningTime: "9:00 AM", ClosingTime: "9:00 PM"}
	}
	days["sunday"] = DayInput{IsOpen: false}
	return days
}

func TestUseCase_Execute(t *testing.T) {
	repo := newRepo()
	uc := NewUseCase(repo, &passTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SalonID: 7, Days: fullWeek()})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Len(t, repo.saved[0].WorkingHours, domain.DaysInWeek)
	assert.Equal(t, "09:00 AM — 09:00 PM", repo.saved[0].WorkingHours["monday"])
	assert.Equal(t, "Closed", repo.saved[0].WorkingHours["sunday"])
	assert.False(t, resp.Schedule.Day(domain.Sunday).IsOpen)
	assert.Equal(t, "09:00 PM", resp.Schedule.Day(domain.Saturday).ClosingTime)
}

func TestUseCase_Execute_OneInvalidDayWritesNothing(t *testing.T) {
	repo := newRepo()
	tx := &passTx{}

	days := fullWeek()
	days["thursday"] = DayInput{IsOpen: true, OpeningTime: "06:00 PM", ClosingTime: "06:00 PM"}

	_, err := NewUseCase(repo, tx, nopLogger{}).Execute(context.Background(), &Request{UserID: 42, SalonID: 7, Days: days})

	assert.ErrorIs(t, err, ErrInvalidHours)
	assert.Zero(t, tx.calls)
	assert.Empty(t, repo.saved)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	missingDay := fullWeek()
	delete(missingDay, "friday")

	duplicate := fullWeek()
	delete(duplicate, "friday")
	duplicate["MONDAY"] = DayInput{IsOpen: false}

	tests := []struct {
		name    string
		req     *Request
		setup   func(r *fakeRepo)
		wantErr error
	}{
		{name: "nil request", req: nil, wantErr: ErrInvalidInput},
		{name: "missing day", req: &Request{UserID: 42, SalonID: 7, Days: missingDay}, wantErr: ErrInvalidInput},
		{name: "duplicate day", req: &Request{UserID: 42, SalonID: 7, Days: duplicate}, wantErr: ErrInvalidInput},
		{name: "not owner", req: &Request{UserID: 2, SalonID: 7, Days: fullWeek()}, wantErr: ErrAccessDenied},
		{
			name:    "not found",
			req:     &Request{UserID: 42, SalonID: 7, Days: fullWeek()},
			setup:   func(r *fakeRepo) { r.getErr = settingsapi.ErrSettingsNotFound },
			wantErr: ErrSalonNotFound,
		},
		{
			name:    "persist failure",
			req:     &Request{UserID: 42, SalonID: 7, Days: fullWeek()},
			setup:   func(r *fakeRepo) { r.updateErr = errors.New("timeout") },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			if tt.setup != nil {
				tt.setup(repo)
			}
			_, err := NewUseCase(repo, &passTx{}, nopLogger{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package get_hours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	settings *domain.GeneralSettings
	err      error
}

func (s *stubService) GetGeneralSettings(context.Context, int64) (*domain.GeneralSettings, error) {
	return s.settings, s.err
}

func TestHandler_OrderedWeek(t *testing.T) {
	s := domain.DefaultGeneralSettings(5)
	s.WorkingHours[domain.Sunday] = domain.ClosedDay()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/5/hours", nil)
	req = mux.SetURLVars(req, map[string]string{"salonId": "5"})
	rec := httptest.NewRecorder()
	NewHandler(&stubService{settings: s}, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body HoursResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Days, domain.DaysInWeek)
	assert.Equal(t, "monday", body.Days[0].Key)
	assert.Equal(t, "Monday", body.Days[0].Label)
	assert.Equal(t, "10:00 AM — 08:00 PM", body.Days[0].Display)
	assert.Equal(t, "sunday", body.Days[6].Key)
	assert.Equal(t, "Closed", body.Days[6].Display)
	assert.False(t, body.Days[6].IsOpen)
}

func TestHandler_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/5/hours", nil)
	req = mux.SetURLVars(req, map[string]string{"salonId": "5"})
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: settings.ErrSettingsNotFound}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

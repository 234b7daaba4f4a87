package update_location_info

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err error
	got *models.UpdateLocationRequest
}

func (s *stubService) UpdateLocationInfo(_ context.Context, req *models.UpdateLocationRequest) (*domain.GeneralSettings, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	out := domain.DefaultGeneralSettings(req.SalonID)
	out.Address = *req.Address
	return out, nil
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/salons/7/location", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"salonId": "7"})
	return req.WithContext(middleware.WithUser(req.Context(), 42, domain.RoleOwner))
}

func TestHandler_OK(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(`{"address":"Main st. 1","workingHours":{"sunday":"Closed"}}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, int64(7), svc.got.SalonID)
	assert.Equal(t, "Closed", svc.got.WorkingHours["sunday"])
	assert.Nil(t, svc.got.Timezone)
	assert.Contains(t, rec.Body.String(), `"address":"Main st. 1"`)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: settings.ErrSettingsNotFound, wantStatus: http.StatusNotFound},
		{err: settings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: settings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: settings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle(rec, newRequest(`{"address":"x"}`))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

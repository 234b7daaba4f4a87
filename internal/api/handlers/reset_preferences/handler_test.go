package reset_preferences

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/preferences"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	err       error
	calls     int
	namespace domain.PreferenceNamespace
}

func (s *stubService) Reset(_ context.Context, _ int64, namespace domain.PreferenceNamespace) error {
	s.calls++
	s.namespace = namespace
	return s.err
}

func newRequest(userID, namespace string, currentUser int64) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+userID+"/preferences/"+namespace, nil)
	req = mux.SetURLVars(req, map[string]string{"userId": userID, "namespace": namespace})
	if currentUser > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), currentUser, domain.RoleCustomer))
	}
	return req
}

func TestHandler_NoContent(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest("5", "privacy", 5))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, domain.PreferenceNamespace("privacy"), svc.namespace)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		currentUser int64
		err         error
		wantStatus  int
		wantCalls   int
	}{
		{name: "bad user id", userID: "x", currentUser: 5, wantStatus: http.StatusBadRequest},
		{name: "no user", userID: "5", wantStatus: http.StatusUnauthorized},
		{name: "someone else", userID: "5", currentUser: 6, wantStatus: http.StatusForbidden},
		{name: "unknown namespace", userID: "5", currentUser: 5, err: preferences.ErrUnknownNamespace, wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "store failure", userID: "5", currentUser: 5, err: errors.New("x"), wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, newRequest(tt.userID, "privacy", tt.currentUser))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}

package reset_preferences

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/preferences"
)

const (
	msgInvalidUserID    = "некорректный ID пользователя"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ к чужим настройкам запрещен"
	msgUnknownNamespace = "неизвестный раздел настроек"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{userId}/preferences/{namespace}
// Сбрасывает раздел настроек к значениям по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	currentUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if currentUserID != userID {
		h.logger.Warn("DELETE /users/{id}/preferences - Access denied: user_id=%d, current_user_id=%d",
			userID, currentUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	namespace := domain.PreferenceNamespace(vars["namespace"])
	if err := h.service.Reset(r.Context(), userID, namespace); err != nil {
		switch {
		case errors.Is(err, preferences.ErrUnknownNamespace):
			handlers.RespondNotFound(w, msgUnknownNamespace)

		default:
			h.logger.Error("DELETE /users/{id}/preferences - Failed to reset preferences: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id}/preferences - Preferences reset: user_id=%d, namespace=%s", userID, namespace)
	w.WriteHeader(http.StatusNoContent)
}

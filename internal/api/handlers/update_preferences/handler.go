package update_preferences

import (
	"encoding/json"
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
	msgInvalidUserID      = "некорректный ID пользователя"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ к чужим настройкам запрещен"
	msgUnknownNamespace   = "неизвестный раздел настроек"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные значения настроек"
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

// Handle PUT /api/v1/users/{userId}/preferences/{namespace}
// Тело запроса - JSON объект настроек раздела, не переданные поля получают значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("PUT /users/{id}/preferences - Invalid user ID: %v", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	currentUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if currentUserID != userID {
		h.logger.Warn("PUT /users/{id}/preferences - Access denied: user_id=%d, current_user_id=%d",
			userID, currentUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var raw json.RawMessage
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("PUT /users/{id}/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	namespace := domain.PreferenceNamespace(vars["namespace"])
	result, err := h.service.Set(r.Context(), userID, namespace, raw)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrUnknownNamespace):
			handlers.RespondNotFound(w, msgUnknownNamespace)

		case errors.Is(err, preferences.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/preferences - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /users/{id}/preferences - Failed to save preferences: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/preferences - Preferences saved: user_id=%d, namespace=%s", userID, namespace)
	handlers.RespondJSON(w, http.StatusOK, &PreferencesResponse{
		UserID:      userID,
		Namespace:   string(namespace),
		Preferences: result,
	})
}

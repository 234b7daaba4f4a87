package get_preferences

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

// Handle GET /api/v1/users/{userId}/preferences/{namespace}
// Пользователь видит только свои настройки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{id}/preferences - Invalid user ID: %v", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	currentUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if currentUserID != userID {
		h.logger.Warn("GET /users/{id}/preferences - Access denied: user_id=%d, current_user_id=%d",
			userID, currentUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	namespace := domain.PreferenceNamespace(vars["namespace"])
	result, err := h.service.Get(r.Context(), userID, namespace)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrUnknownNamespace):
			handlers.RespondNotFound(w, msgUnknownNamespace)

		case errors.Is(err, preferences.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/preferences - Failed to get preferences: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &PreferencesResponse{
		UserID:      userID,
		Namespace:   string(namespace),
		Preferences: result,
	})
}

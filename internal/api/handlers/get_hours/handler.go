package get_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		h.logger.Warn("GET /salons/{id}/hours - Invalid salon ID: %v", mux.Vars(r)["salonId"])
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetGeneralSettings(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("GET /salons/{id}/hours - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSalonID)

		default:
			h.logger.Error("GET /salons/{id}/hours - Failed to get hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSchedule(salonID, result.WorkingHours))
}

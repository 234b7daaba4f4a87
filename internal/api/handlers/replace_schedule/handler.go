package replace_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	replaceSchedule "github.com/m04kA/SMC-SalonService/internal/usecase/replace_schedule"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidHours       = "время открытия должно быть раньше времени закрытия, формат H:MM AM/PM"
	msgInvalidDays        = "расписание должно содержать все 7 дней недели"
)

type Handler struct {
	useCase ReplaceScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid salon ID: %v", mux.Vars(r)["salonId"])
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, salonID))
	if err != nil {
		switch {
		case errors.Is(err, replaceSchedule.ErrInvalidHours):
			h.logger.Warn("PUT /salons/{id}/hours - Invalid hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, replaceSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/hours - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, replaceSchedule.ErrSalonNotFound):
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, replaceSchedule.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/hours - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /salons/{id}/hours - Failed to save schedule: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/hours - Schedule replaced: salon_id=%d", salonID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package update_day_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	updateDayHours "github.com/m04kA/SMC-SalonService/internal/usecase/update_day_hours"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidHours       = "время открытия должно быть раньше времени закрытия, формат H:MM AM/PM"
	msgInvalidWeekday     = "некорректный день недели"
)

type Handler struct {
	useCase UpdateDayHoursUseCase
	logger  Logger
}

func NewHandler(useCase UpdateDayHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/hours/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Invalid salon ID: %v", vars["salonId"])
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDayHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, salonID, vars["weekday"]))
	if err != nil {
		switch {
		case errors.Is(err, updateDayHours.ErrInvalidHours):
			h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Invalid hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, updateDayHours.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, updateDayHours.ErrSalonNotFound):
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, updateDayHours.ErrAccessDenied):
			h.logger.Warn("PUT /salons/{id}/hours/{weekday} - Access denied: salon_id=%d, user_id=%d", salonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /salons/{id}/hours/{weekday} - Failed to save hours: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/hours/{weekday} - Hours saved: salon_id=%d, weekday=%s", salonID, result.Weekday)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_store_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getStoreStatus "github.com/m04kA/SMC-SalonService/internal/usecase/get_store_status"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgSalonNotFound  = "салон не найден"
)

type Handler struct {
	useCase GetStoreStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetStoreStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/status
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID, err := strconv.ParseInt(mux.Vars(r)["salonId"], 10, 64)
	if err != nil || salonID <= 0 {
		h.logger.Warn("GET /salons/{id}/status - Invalid salon ID: %v", mux.Vars(r)["salonId"])
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getStoreStatus.Request{SalonID: salonID})
	if err != nil {
		switch {
		case errors.Is(err, getStoreStatus.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id}/status - Salon not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getStoreStatus.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSalonID)

		default:
			h.logger.Error("GET /salons/{id}/status - Failed to get status: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package inspect_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers"
	getDaySlots "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
	inspectSlot "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/inspect_slot"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgInvalidSchedule       = "расписание специалиста некорректно"
	msgSourceUnavailable     = "сервис расписаний недоступен"
)

type Handler struct {
	useCase InspectSlotUseCase
	logger  Logger
}

func NewHandler(useCase InspectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/slots/{time}
// Query params: date (optional, YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /professionals/{id}/slots/{time} - Invalid professional ID: %q", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(professionalID, r.URL.Query().Get("date"), vars["time"])
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/slots/{time} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, inspectSlot.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/slots/{time} - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		case errors.Is(err, getDaySlots.ErrInvalidSchedule):
			h.logger.Warn("GET /professionals/{id}/slots/{time} - Invalid schedule: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		case errors.Is(err, getDaySlots.ErrSourceUnavailable):
			h.logger.Error("GET /professionals/{id}/slots/{time} - Source unavailable: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadGateway(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /professionals/{id}/slots/{time} - Failed to inspect slot: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

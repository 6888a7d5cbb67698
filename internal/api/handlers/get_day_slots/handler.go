package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers"
	getDaySlots "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSchedule       = "расписание специалиста некорректно"
	msgSourceUnavailable     = "сервис расписаний недоступен"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/slots
// Query params: date (optional, YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /professionals/{id}/slots - Invalid professional ID: %q", vars["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(professionalID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		case errors.Is(err, getDaySlots.ErrInvalidSchedule):
			h.logger.Warn("GET /professionals/{id}/slots - Invalid schedule: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		case errors.Is(err, getDaySlots.ErrSourceUnavailable):
			h.logger.Error("GET /professionals/{id}/slots - Source unavailable: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadGateway(w, msgSourceUnavailable)

		default:
			h.logger.Error("GET /professionals/{id}/slots - Failed to get slots: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/slots - Slots retrieved successfully: professional_id=%d, date=%s, slots_count=%d",
		professionalID, response.Date, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

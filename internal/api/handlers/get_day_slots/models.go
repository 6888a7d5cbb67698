package get_day_slots

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	getDaySlots "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date           string          `json:"date"`
	ProfessionalID int64           `json:"professionalId"`
	HasSchedule    bool            `json:"hasSchedule"`
	Slots          []handlers.Slot `json:"slots"`
	DroppedRecords int             `json:"droppedRecords"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]handlers.Slot, len(resp.Slots))
	for i := range resp.Slots {
		slots[i] = handlers.FromDomainSlot(&resp.Slots[i])
	}

	return &DaySlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ProfessionalID: resp.ProfessionalID,
		HasSchedule:    resp.HasSchedule,
		Slots:          slots,
		DroppedRecords: resp.Dropped,
	}
}

// ToUseCaseRequest создает запрос use case. Пустая дата - сегодня
func ToUseCaseRequest(professionalID int64, dateStr string) (*getDaySlots.Request, error) {
	req := &getDaySlots.Request{ProfessionalID: professionalID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date

	return req, nil
}

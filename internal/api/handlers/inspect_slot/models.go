package inspect_slot

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/api/handlers"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	inspectSlot "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/inspect_slot"
)

// SlotStateResponse HTTP response model
type SlotStateResponse struct {
	Date               string                `json:"date"`
	Time               string                `json:"time"`
	Kind               string                `json:"kind"`
	Label              string                `json:"label"`
	Visible            bool                  `json:"visible"`
	Booked             bool                  `json:"booked"`
	FreeIntervalMember bool                  `json:"freeIntervalMember"`
	Appointment        *handlers.Appointment `json:"appointment,omitempty"`
	FreeInterval       *handlers.Appointment `json:"freeInterval,omitempty"`
	FitSlot            *handlers.FitSlot     `json:"fitSlot,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *inspectSlot.Response) *SlotStateResponse {
	return &SlotStateResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		Time:               resp.Time,
		Kind:               string(resp.Slot.Kind),
		Label:              resp.Slot.Label,
		Visible:            resp.Visible,
		Booked:             resp.Booked,
		FreeIntervalMember: resp.FreeIntervalMember,
		Appointment:        handlers.FromDomainAppointment(resp.Appointment),
		FreeInterval:       handlers.FromDomainAppointment(resp.FreeInterval),
		FitSlot:            handlers.FromDomainFitSlot(resp.FitSlot),
	}
}

// ToUseCaseRequest создает запрос use case. Пустая дата - сегодня
func ToUseCaseRequest(professionalID int64, dateStr, timeStr string) (*inspectSlot.Request, error) {
	req := &inspectSlot.Request{ProfessionalID: professionalID, Time: timeStr}
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

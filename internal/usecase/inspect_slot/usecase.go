package inspect_slot

import (
	"context"
	"fmt"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// UseCase use case точечных запросов для подсветки агенды
type UseCase struct {
	daySlots DaySlots
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(daySlots DaySlots, logger Logger) *UseCase {
	return &UseCase{
		daySlots: daySlots,
		logger:   logger,
	}
}

// Execute рассчитывает день и отвечает, чем занят момент времени.
// Ошибки расчета дня возвращаются как есть (sentinel-ошибки get_day_slots)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем момент времени: "HH:MM", "HH:MM:SS" или timestamp
	t, err := timeutil.ParseClock(req.Time)
	if err != nil {
		uc.logger.Warn("InspectSlot: bad time %q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Рассчитываем день
	day, err := uc.daySlots.Execute(ctx, &get_day_slots.Request{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
	})
	if err != nil {
		return nil, err
	}

	// 3. Точечные запросы
	resp := &Response{
		Date:               day.Date,
		Time:               timeutil.ToText(t),
		Slot:               day.Day.Describe(t),
		Booked:             day.Day.IsBooked(t),
		FreeIntervalMember: day.Day.IsFreeIntervalMember(t),
	}
	_, resp.Visible = day.Day.SlotAt(t)
	resp.Appointment, _ = day.Day.AppointmentAt(t)
	resp.FreeInterval, _ = day.Day.FreeIntervalAt(t)
	resp.FitSlot, _ = day.Day.FitSlotAt(t)

	uc.logger.Info("InspectSlot: professional=%d, date=%s, time=%s -> %s",
		req.ProfessionalID, day.Date.Format(domain.DateFormat), resp.Time, resp.Slot.Kind)

	return resp, nil
}

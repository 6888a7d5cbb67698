package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/agenda"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

// UseCase use case расчета слотов дня специалиста
type UseCase struct {
	source       AgendaSource
	sourceName   string
	normalizer   Normalizer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// sourceName попадает в метрики: backend или postgres
func NewUseCase(
	source AgendaSource,
	sourceName string,
	normalizer Normalizer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		source:       source,
		sourceName:   sourceName,
		normalizer:   normalizer,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case: загрузка, нормализация и полный пересчет дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата по умолчанию - сегодня
	date := req.Date
	if date.IsZero() {
		now := uc.timeProvider.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	uc.logger.Info("GetDaySlots: professional=%d, date=%s", req.ProfessionalID, date.Format(domain.DateFormat))

	// 3. Параллельно загружаем расписание и записи
	var (
		env *normalize.ScheduleEnvelope
		raw []normalize.RawAppointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		env, err = uc.source.GetSchedule(gctx, req.ProfessionalID, date)
		if err != nil {
			return fmt.Errorf("GetSchedule: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		raw, err = uc.source.GetAppointments(gctx, req.ProfessionalID, date)
		if err != nil {
			return fmt.Errorf("GetAppointments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		uc.logger.Error("GetDaySlots: failed to load agenda for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	// 4. Нормализуем: некорректные записи отбрасываются, день считается по остальным
	schedules, scheduleReport := uc.normalizer.Schedules(env)
	appointments, appointmentReport := uc.normalizer.Appointments(raw, date)

	dropped := scheduleReport.Dropped + appointmentReport.Dropped
	if dropped > 0 {
		uc.metrics.RecordsDroppedBy(scheduleReport.Reasons)
		uc.metrics.RecordsDroppedBy(appointmentReport.Reasons)
		uc.logger.Warn("GetDaySlots: dropped %d malformed records for professional=%d", dropped, req.ProfessionalID)
	}

	// 5. Выбираем расписание на дату
	schedule, err := agenda.ResolveSchedule(schedules, date)
	hasSchedule := true
	if err != nil {
		if !errors.Is(err, agenda.ErrScheduleMissing) {
			return nil, fmt.Errorf("%w: resolve schedule: %v", ErrInternal, err)
		}
		uc.logger.Info("GetDaySlots: no schedule for professional=%d on %s", req.ProfessionalID, date.Format(domain.DateFormat))
		hasSchedule = false
	}

	// 6. Полный пересчет дня
	day, err := agenda.Compute(schedule, appointments, date)
	if err != nil {
		if errors.Is(err, agenda.ErrInvalidSchedule) {
			uc.logger.Warn("GetDaySlots: invalid schedule for professional=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		uc.logger.Error("GetDaySlots: failed to compute day: %v", err)
		return nil, fmt.Errorf("%w: failed to compute day: %v", ErrInternal, err)
	}

	uc.metrics.ObserveDay(uc.sourceName, len(day.Slots), len(day.FitSlots))

	uc.logger.Info("GetDaySlots: generated %d slots (%d fit) for professional=%d, date=%s",
		len(day.Slots), len(day.FitSlots), req.ProfessionalID, date.Format(domain.DateFormat))

	return &Response{
		Date:           date,
		ProfessionalID: req.ProfessionalID,
		HasSchedule:    hasSchedule,
		Slots:          day.Slots,
		Dropped:        dropped,
		Day:            day,
	}, nil
}

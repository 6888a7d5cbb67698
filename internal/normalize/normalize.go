// Package normalize maps loosely typed backend records onto the strict domain types.
// Nothing downstream of this package sees raw text times or aliased field names.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// Drop reasons reported in Report.Reasons
const (
	ReasonFormat    = "format"
	ReasonInvalid   = "invalid"
	ReasonOtherDate = "other_date"
)

// Report итог нормализации: сколько записей отброшено и почему
type Report struct {
	Dropped int
	Reasons map[string]int
}

func (r *Report) drop(reason string) {
	if r.Reasons == nil {
		r.Reasons = make(map[string]int)
	}
	r.Dropped++
	r.Reasons[reason]++
}

// Normalizer преобразует сырые записи бэкенда в доменные типы.
// Некорректная запись отбрасывается с предупреждением в лог; остальные записи дня не страдают
type Normalizer struct {
	logger Logger
}

// New создает новый Normalizer
func New(logger Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Schedules нормализует ответ на запрос расписания.
// hasSchedule=false означает отсутствие расписания и дает пустой список
func (n *Normalizer) Schedules(env *ScheduleEnvelope) ([]domain.WorkSchedule, Report) {
	var report Report
	schedules := make([]domain.WorkSchedule, 0)

	if env == nil || !env.HasSchedule {
		return schedules, report
	}

	for i, raw := range env.Schedules {
		schedule, err := ToWorkSchedule(raw)
		if err != nil {
			n.logger.Warn("normalize: dropping schedule #%d: %v", i, err)
			report.drop(reasonOf(err))
			continue
		}
		schedules = append(schedules, schedule)
	}

	return schedules, report
}

// Appointments нормализует записи агенды на дату date.
// Записи, явно относящиеся к другой дате, отбрасываются
func (n *Normalizer) Appointments(raw []RawAppointment, date time.Time) ([]domain.Appointment, Report) {
	var report Report
	appointments := make([]domain.Appointment, 0, len(raw))

	for _, r := range raw {
		if d, ok := recordDate(r); ok && !domain.SameDay(d, date) {
			n.logger.Warn("normalize: dropping appointment id=%d: belongs to %s, requested %s",
				r.ID, d.Format(domain.DateFormat), date.Format(domain.DateFormat))
			report.drop(ReasonOtherDate)
			continue
		}

		appointment, err := ToAppointment(r)
		if err != nil {
			n.logger.Warn("normalize: dropping appointment id=%d: %v", r.ID, err)
			report.drop(reasonOf(err))
			continue
		}

		if !isKnownStatus(r.Status) {
			n.logger.Warn("normalize: appointment id=%d has unknown status %q, treating as %s",
				r.ID, r.Status, appointment.Status)
		}

		appointments = append(appointments, appointment)
	}

	return appointments, report
}

// ToWorkSchedule преобразует одну запись расписания.
// Запись без времени начала или окончания трактуется как выходной.
// Инварианты расписания здесь не проверяются: это делает agenda.Compute, отвечая ErrInvalidSchedule
func ToWorkSchedule(raw RawSchedule) (domain.WorkSchedule, error) {
	var schedule domain.WorkSchedule

	if raw.Date != "" {
		date, err := parseDate(raw.Date)
		if err != nil {
			return schedule, fmt.Errorf("%w: date %q", ErrInvalidRecord, raw.Date)
		}
		schedule.Date = &date
		schedule.DayOfWeek = date.Weekday()
	} else if raw.DayOfWeek != nil {
		if *raw.DayOfWeek < 0 || *raw.DayOfWeek > 6 {
			return schedule, fmt.Errorf("%w: day of week %d out of range", ErrInvalidRecord, *raw.DayOfWeek)
		}
		schedule.DayOfWeek = time.Weekday(*raw.DayOfWeek)
	} else {
		return schedule, fmt.Errorf("%w: neither date nor day of week set", ErrInvalidRecord)
	}

	if raw.IsDayOff || raw.StartTime == "" || raw.EndTime == "" {
		schedule.IsDayOff = true
		return schedule, nil
	}

	start, err := timeutil.ParseClock(raw.StartTime)
	if err != nil {
		return schedule, fmt.Errorf("start_time: %w", err)
	}
	end, err := timeutil.ParseClock(raw.EndTime)
	if err != nil {
		return schedule, fmt.Errorf("end_time: %w", err)
	}
	schedule.StartTime = start
	schedule.EndTime = end

	// Обед учитывается, только если заданы обе границы
	if raw.LunchStartTime != "" && raw.LunchEndTime != "" {
		lunchStart, err := timeutil.ParseClock(raw.LunchStartTime)
		if err != nil {
			return schedule, fmt.Errorf("lunch_start_time: %w", err)
		}
		lunchEnd, err := timeutil.ParseClock(raw.LunchEndTime)
		if err != nil {
			return schedule, fmt.Errorf("lunch_end_time: %w", err)
		}
		schedule.LunchStartTime = &lunchStart
		schedule.LunchEndTime = &lunchEnd
	}

	return schedule, nil
}

// ToAppointment преобразует одну запись агенды.
// Если нет end_time, окончание вычисляется по длительности
func ToAppointment(raw RawAppointment) (domain.Appointment, error) {
	appointment := domain.Appointment{
		ID:          raw.ID,
		Status:      toStatus(raw.Status),
		ClientName:  raw.ClientName,
		ServiceName: raw.ServiceName,
		Notes:       raw.Notes,
	}

	start, err := timeutil.ParseClock(raw.StartTime)
	if err != nil {
		return appointment, fmt.Errorf("start_time: %w", err)
	}
	appointment.StartTime = start

	switch {
	case raw.EndTime != "":
		end, err := timeutil.ParseClock(raw.EndTime)
		if err != nil {
			return appointment, fmt.Errorf("end_time: %w", err)
		}
		appointment.EndTime = end
	case raw.DurationMinutes > 0:
		appointment.EndTime = start + raw.DurationMinutes
	default:
		return appointment, fmt.Errorf("%w: neither end time nor duration set", ErrInvalidRecord)
	}

	if !appointment.Valid() {
		return appointment, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidRecord,
			timeutil.ToText(appointment.EndTime), timeutil.ToText(appointment.StartTime))
	}

	return appointment, nil
}

func toStatus(raw string) domain.AppointmentStatus {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "cancelled", "cancelado":
		return domain.StatusCanceled
	default:
		for _, known := range domain.KnownStatuses {
			if s == string(known) {
				return known
			}
		}
		// Неизвестный статус считаем бронированием: лучше занять слот, чем допустить двойную запись
		return domain.StatusPending
	}
}

func isKnownStatus(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "cancelled" || s == "cancelado" {
		return true
	}
	for _, known := range domain.KnownStatuses {
		if s == string(known) {
			return true
		}
	}
	return false
}

// recordDate берет дату из appointment_date или из timestamp в start_time
func recordDate(r RawAppointment) (time.Time, bool) {
	for _, candidate := range []string{r.Date, r.StartTime} {
		if len(candidate) < len(domain.DateFormat) {
			continue
		}
		if d, err := parseDate(candidate); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) > len(domain.DateFormat) {
		s = s[:len(domain.DateFormat)]
	}
	return time.Parse(domain.DateFormat, s)
}

func reasonOf(err error) string {
	var fe *timeutil.FormatError
	if errors.As(err, &fe) {
		return ReasonFormat
	}
	return ReasonInvalid
}

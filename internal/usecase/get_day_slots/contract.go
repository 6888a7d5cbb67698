package get_day_slots

import (
	"context"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

// AgendaSource источник расписаний и записей: HTTP бэкенд, Postgres или кэш поверх них
type AgendaSource interface {
	GetSchedule(ctx context.Context, professionalID int64, date time.Time) (*normalize.ScheduleEnvelope, error)
	GetAppointments(ctx context.Context, professionalID int64, date time.Time) ([]normalize.RawAppointment, error)
}

// Normalizer переводит сырые записи в доменные типы
type Normalizer interface {
	Schedules(env *normalize.ScheduleEnvelope) ([]domain.WorkSchedule, normalize.Report)
	Appointments(raw []normalize.RawAppointment, date time.Time) ([]domain.Appointment, normalize.Report)
}

// Metrics метрики расчета дня
type Metrics interface {
	ObserveDay(source string, slots, fitSlots int)
	RecordsDroppedBy(reasons map[string]int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

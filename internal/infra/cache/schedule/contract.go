package schedule

import (
	"context"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

// Source источник расписаний и записей, который оборачивает кэш
type Source interface {
	GetSchedule(ctx context.Context, professionalID int64, date time.Time) (*normalize.ScheduleEnvelope, error)
	GetAppointments(ctx context.Context, professionalID int64, date time.Time) ([]normalize.RawAppointment, error)
}

// Metrics счетчик обращений к кэшу
type Metrics interface {
	CacheResult(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

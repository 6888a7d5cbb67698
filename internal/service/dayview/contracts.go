package dayview

import (
	"context"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
)

// DaySlots расчет слотов дня
type DaySlots interface {
	Execute(ctx context.Context, req *get_day_slots.Request) (*get_day_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

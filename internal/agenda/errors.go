package agenda

import "errors"

var (
	// ErrScheduleMissing возвращается, когда на дату нет расписания.
	// Это не сбой: для такого дня список слотов просто пуст
	ErrScheduleMissing = errors.New("agenda: no schedule for date")

	// ErrInvalidSchedule возвращается, когда расписание нарушает инварианты (start < end, обед внутри дня)
	ErrInvalidSchedule = errors.New("agenda: invalid work schedule")
)

package get_day_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSchedule возвращается, когда расписание на дату нарушает инварианты
	// (начало не раньше конца, обед вне рабочего дня)
	ErrInvalidSchedule = errors.New("invalid work schedule")

	// ErrSourceUnavailable возвращается, когда источник расписаний недоступен
	ErrSourceUnavailable = errors.New("agenda source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

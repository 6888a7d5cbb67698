package normalize

import "errors"

var (
	// ErrInvalidRecord возвращается, когда запись корректно разобрана, но нарушает инварианты
	// (запись агенды нулевой длины, у расписания нет ни даты, ни дня недели).
	// Ошибки формата времени возвращаются как *timeutil.FormatError
	ErrInvalidRecord = errors.New("normalize: invalid record")
)

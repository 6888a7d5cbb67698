package domain

// Fit slot acceptance bounds, inclusive
const (
	MinFitSlotMinutes = 10
	MaxFitSlotMinutes = 30
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// KnownStatuses список статусов, которые приходят от бэкенда
var KnownStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusFree,
}

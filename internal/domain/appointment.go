package domain

import "github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"

// AppointmentStatus represents the status of an appointment record
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"

	// StatusFree marks a professional-declared free interval, not a client booking.
	StatusFree AppointmentStatus = "free"
)

// Appointment represents a booked interval (or a free interval when Status is free).
// Times are minutes since midnight and do not need to be grid-aligned.
type Appointment struct {
	ID        int64
	StartTime int
	EndTime   int
	Status    AppointmentStatus

	// Display detail, passed through from the backend
	ClientName  string
	ServiceName string
	Notes       string
}

// IsBooking returns true if the appointment occupies the agenda as a client booking
func (a *Appointment) IsBooking() bool {
	return a.Status != StatusCanceled && a.Status != StatusFree
}

// IsFreeInterval returns true if the record is a free interval
func (a *Appointment) IsFreeInterval() bool {
	return a.Status == StatusFree
}

// Valid returns true if StartTime < EndTime
func (a *Appointment) Valid() bool {
	return a.StartTime < a.EndTime
}

// Label renders "HH:MM - HH:MM"
func (a *Appointment) Label() string {
	return timeutil.ToText(a.StartTime) + " - " + timeutil.ToText(a.EndTime)
}

// FreeSpan is a maximal run of merged free intervals.
type FreeSpan struct {
	Start     int
	End       int
	Intervals []Appointment // source records, in start order
}

// Label renders "HH:MM - HH:MM"
func (s *FreeSpan) Label() string {
	return timeutil.ToText(s.Start) + " - " + timeutil.ToText(s.End)
}

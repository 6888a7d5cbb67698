package domain

import "github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"

// SlotKind classifies a presented slot
type SlotKind string

const (
	SlotAvailable SlotKind = "available"
	SlotBooked    SlotKind = "booked"
	SlotFree      SlotKind = "free"
	SlotLunch     SlotKind = "lunch"
	SlotFit       SlotKind = "fit"
)

// FitSlot is a short bookable gap left after an irregular-duration appointment.
// It is derived on every computation and never stored.
type FitSlot struct {
	Time               int
	EndTime            int
	DurationMinutes    int
	Opportunistic      bool
	AfterAppointmentID int64
}

// Label renders "HH:MM - HH:MM"
func (f *FitSlot) Label() string {
	return timeutil.ToText(f.Time) + " - " + timeutil.ToText(f.EndTime)
}

// PresentedSlot is the render unit of the agenda.
// At most one of Appointment, FreeInterval and Fit is set, matching Kind.
type PresentedSlot struct {
	Time    string // "HH:MM"
	Minutes int
	Kind    SlotKind
	Label   string

	Appointment  *Appointment
	FreeInterval *FreeSpan
	Fit          *FitSlot
}

// IsBookable returns true if a client can be booked into the slot
func (s *PresentedSlot) IsBookable() bool {
	return s.Kind == SlotAvailable || s.Kind == SlotFit
}

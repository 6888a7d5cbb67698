package handlers

import (
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// Appointment запись агенды в HTTP ответе
type Appointment struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	ClientName  string `json:"clientName,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// FreeInterval склеенный свободный интервал в HTTP ответе
type FreeInterval struct {
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Intervals []Appointment `json:"intervals"`
}

// FitSlot encaixe в HTTP ответе
type FitSlot struct {
	Time               string `json:"time"`
	EndTime            string `json:"endTime"`
	DurationMinutes    int    `json:"durationMinutes"`
	Opportunistic      bool   `json:"opportunistic"`
	AfterAppointmentID int64  `json:"afterAppointmentId"`
}

// Slot слот итогового списка в HTTP ответе
type Slot struct {
	Time         string        `json:"time"`
	Kind         string        `json:"kind"`
	Label        string        `json:"label"`
	Bookable     bool          `json:"bookable"`
	Appointment  *Appointment  `json:"appointment,omitempty"`
	FreeInterval *FreeInterval `json:"freeInterval,omitempty"`
	FitSlot      *FitSlot      `json:"fitSlot,omitempty"`
}

// FromDomainAppointment конвертирует запись агенды
func FromDomainAppointment(a *domain.Appointment) *Appointment {
	if a == nil {
		return nil
	}
	return &Appointment{
		ID:          a.ID,
		StartTime:   timeutil.ToText(a.StartTime),
		EndTime:     timeutil.ToText(a.EndTime),
		Status:      string(a.Status),
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		Notes:       a.Notes,
	}
}

// FromDomainFreeSpan конвертирует склеенный свободный интервал
func FromDomainFreeSpan(s *domain.FreeSpan) *FreeInterval {
	if s == nil {
		return nil
	}
	intervals := make([]Appointment, len(s.Intervals))
	for i := range s.Intervals {
		intervals[i] = *FromDomainAppointment(&s.Intervals[i])
	}
	return &FreeInterval{
		StartTime: timeutil.ToText(s.Start),
		EndTime:   timeutil.ToText(s.End),
		Intervals: intervals,
	}
}

// FromDomainFitSlot конвертирует encaixe
func FromDomainFitSlot(f *domain.FitSlot) *FitSlot {
	if f == nil {
		return nil
	}
	return &FitSlot{
		Time:               timeutil.ToText(f.Time),
		EndTime:            timeutil.ToText(f.EndTime),
		DurationMinutes:    f.DurationMinutes,
		Opportunistic:      f.Opportunistic,
		AfterAppointmentID: f.AfterAppointmentID,
	}
}

// FromDomainSlot конвертирует слот итогового списка
func FromDomainSlot(s *domain.PresentedSlot) Slot {
	return Slot{
		Time:         s.Time,
		Kind:         string(s.Kind),
		Label:        s.Label,
		Bookable:     s.IsBookable(),
		Appointment:  FromDomainAppointment(s.Appointment),
		FreeInterval: FromDomainFreeSpan(s.FreeInterval),
		FitSlot:      FromDomainFitSlot(s.Fit),
	}
}

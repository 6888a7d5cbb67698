package agenda

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// monday 2025-03-10
var testDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func m(text string) int {
	v, err := timeutil.ToMinutes(text)
	if err != nil {
		panic(err)
	}
	return v
}

func mp(text string) *int {
	v := m(text)
	return &v
}

func schedule(start, end string) *domain.WorkSchedule {
	return &domain.WorkSchedule{
		DayOfWeek: time.Monday,
		StartTime: m(start),
		EndTime:   m(end),
	}
}

func withLunch(s *domain.WorkSchedule, start, end string) *domain.WorkSchedule {
	s.LunchStartTime = mp(start)
	s.LunchEndTime = mp(end)
	return s
}

func appt(id int64, start, end string, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:        id,
		StartTime: m(start),
		EndTime:   m(end),
		Status:    status,
	}
}

func texts(minutes []int) []string {
	out := make([]string, len(minutes))
	for i, v := range minutes {
		out[i] = timeutil.ToText(v)
	}
	return out
}

func slotTimes(slots []domain.PresentedSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func slotKinds(slots []domain.PresentedSlot) []domain.SlotKind {
	out := make([]domain.SlotKind, len(slots))
	for i, s := range slots {
		out[i] = s.Kind
	}
	return out
}

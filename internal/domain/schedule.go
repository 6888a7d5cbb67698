package domain

import (
	"fmt"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// WorkSchedule represents a professional's working pattern for one weekday,
// or for one specific date when Date is set.
// Times are minutes since midnight.
type WorkSchedule struct {
	DayOfWeek      time.Weekday
	Date           *time.Time // NULL = applies to every DayOfWeek
	StartTime      int
	EndTime        int
	LunchStartTime *int
	LunchEndTime   *int
	IsDayOff       bool
}

// HasLunch returns true if both lunch boundaries are set
func (s *WorkSchedule) HasLunch() bool {
	return s.LunchStartTime != nil && s.LunchEndTime != nil
}

// IsDateSpecific returns true if this schedule overrides a single date
func (s *WorkSchedule) IsDateSpecific() bool {
	return s.Date != nil
}

// AppliesTo returns true if the schedule is meant for the given date
func (s *WorkSchedule) AppliesTo(date time.Time) bool {
	if s.Date != nil {
		return SameDay(*s.Date, date)
	}
	return s.DayOfWeek == date.Weekday()
}

// Validate checks the schedule invariants. Day-off schedules are always valid.
func (s *WorkSchedule) Validate() error {
	if s.IsDayOff {
		return nil
	}
	if s.StartTime >= s.EndTime {
		return fmt.Errorf("start %s must be before end %s",
			timeutil.ToText(s.StartTime), timeutil.ToText(s.EndTime))
	}
	if s.LunchStartTime == nil && s.LunchEndTime == nil {
		return nil
	}
	if !s.HasLunch() {
		return fmt.Errorf("lunch start and end must be set together")
	}
	if *s.LunchStartTime >= *s.LunchEndTime {
		return fmt.Errorf("lunch start %s must be before lunch end %s",
			timeutil.ToText(*s.LunchStartTime), timeutil.ToText(*s.LunchEndTime))
	}
	if *s.LunchStartTime < s.StartTime || *s.LunchEndTime > s.EndTime {
		return fmt.Errorf("lunch %s - %s must lie within %s - %s",
			timeutil.ToText(*s.LunchStartTime), timeutil.ToText(*s.LunchEndTime),
			timeutil.ToText(s.StartTime), timeutil.ToText(s.EndTime))
	}
	return nil
}

// SameDay reports whether two instants fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

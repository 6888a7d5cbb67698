// Package agenda computes the presentable slot list of one professional's day.
//
// Everything here is a pure function of (schedule, appointments, date).
// Derived structures are rebuilt from scratch on every call; a day holds a few
// dozen appointments, so there is nothing to cache.
package agenda

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// Grid набор 15-минутных слотов рабочего дня
type Grid struct {
	Date      time.Time
	Available []int                // рабочие слоты, по возрастанию
	Lunch     []int                // слоты обеда, по возрастанию
	Schedule  *domain.WorkSchedule // расписание, по которому построена сетка (nil для пустой)
}

// ResolveSchedule выбирает расписание для даты.
// Расписание на конкретную дату имеет приоритет над расписанием дня недели
func ResolveSchedule(schedules []domain.WorkSchedule, date time.Time) (*domain.WorkSchedule, error) {
	for i := range schedules {
		if schedules[i].IsDateSpecific() && schedules[i].AppliesTo(date) {
			s := schedules[i]
			return &s, nil
		}
	}

	for i := range schedules {
		if !schedules[i].IsDateSpecific() && schedules[i].AppliesTo(date) {
			s := schedules[i]
			return &s, nil
		}
	}

	return nil, ErrScheduleMissing
}

// GenerateGrid генерирует сетку слотов с шагом 15 минут от начала до конца рабочего дня.
// Последний неполный период отбрасывается: слот никогда не выходит за время закрытия
func GenerateGrid(schedule *domain.WorkSchedule, date time.Time) Grid {
	grid := Grid{
		Date:      date,
		Available: []int{},
		Lunch:     []int{},
		Schedule:  schedule,
	}

	if schedule == nil || schedule.IsDayOff || schedule.StartTime >= schedule.EndTime {
		return grid
	}

	for cursor := schedule.StartTime; cursor+timeutil.GridStepMinutes <= schedule.EndTime; cursor += timeutil.GridStepMinutes {
		if isLunch(schedule, cursor) {
			grid.Lunch = append(grid.Lunch, cursor)
			continue
		}
		grid.Available = append(grid.Available, cursor)
	}

	return grid
}

// FirstLunchSlot возвращает первый слот обеда; он представляет весь обеденный перерыв
func (g *Grid) FirstLunchSlot() (int, bool) {
	if len(g.Lunch) == 0 {
		return 0, false
	}
	return g.Lunch[0], true
}

// IsLunchSlot проверяет, что слот входит в обеденные слоты сетки
func (g *Grid) IsLunchSlot(t int) bool {
	for _, l := range g.Lunch {
		if l == t {
			return true
		}
	}
	return false
}

func isLunch(schedule *domain.WorkSchedule, t int) bool {
	if !schedule.HasLunch() {
		return false
	}
	return t >= *schedule.LunchStartTime && t < *schedule.LunchEndTime
}

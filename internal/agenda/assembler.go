package agenda

import (
	"fmt"
	"slices"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// Day результат расчета одного дня: сетка, склеенные свободные интервалы,
// encaixes и итоговый список слотов. Также отвечает на точечные запросы для подсветки
type Day struct {
	Date      time.Time
	Schedule  *domain.WorkSchedule
	Grid      Grid
	FreeSpans []domain.FreeSpan
	FitSlots  []domain.FitSlot
	Slots     []domain.PresentedSlot

	classifier *Classifier
}

// ComputeSlots возвращает итоговый список слотов дня
func ComputeSlots(schedule *domain.WorkSchedule, appointments []domain.Appointment, date time.Time) ([]domain.PresentedSlot, error) {
	day, err := Compute(schedule, appointments, date)
	if err != nil {
		return nil, err
	}
	return day.Slots, nil
}

// Compute рассчитывает день.
// Нет расписания или выходной - пустой список без ошибки.
// Расписание с нарушенными инвариантами - ErrInvalidSchedule, частичный список не возвращается
func Compute(schedule *domain.WorkSchedule, appointments []domain.Appointment, date time.Time) (*Day, error) {
	valid := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Valid() {
			valid = append(valid, a)
		}
	}

	day := &Day{
		Date:       date,
		Schedule:   schedule,
		FreeSpans:  []domain.FreeSpan{},
		FitSlots:   []domain.FitSlot{},
		Slots:      []domain.PresentedSlot{},
		classifier: NewClassifier(valid),
	}

	if schedule == nil || schedule.IsDayOff {
		day.Grid = GenerateGrid(nil, date)
		return day, nil
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	day.Grid = GenerateGrid(schedule, date)
	day.FreeSpans = MergeFreeIntervals(day.classifier.FreeIntervals())
	day.FitSlots = DetectFitSlots(valid)
	day.Slots = day.assemble()

	return day, nil
}

// assemble собирает слоты: сетка (с подавлением), первый слот обеда, начала свободных
// интервалов, encaixes и нестандартные начала бронирований. Затем дедупликация и сортировка
func (d *Day) assemble() []domain.PresentedSlot {
	times := make([]int, 0, len(d.Grid.Available)+len(d.FitSlots)+len(d.FreeSpans)+1)
	seen := make(map[int]struct{}, cap(times))
	add := func(t int) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		times = append(times, t)
	}

	// 1. Слоты сетки, кроме внутренних слотов занятых отрезков
	for _, t := range d.Grid.Available {
		if d.ShouldShowSlot(t) {
			add(t)
		}
	}

	// 2. Один маркер на весь обед
	if lunch, ok := d.Grid.FirstLunchSlot(); ok {
		add(lunch)
	}

	// 3. Один маркер на каждый склеенный свободный интервал
	for _, span := range d.FreeSpans {
		add(span.Start)
	}

	// 4. Encaixes
	for _, fit := range d.FitSlots {
		add(fit.Time)
	}

	// 5. Начала бронирований вне сетки (например, 13:17)
	for _, b := range d.classifier.Bookings() {
		add(b.StartTime)
	}

	slices.Sort(times)

	slots := make([]domain.PresentedSlot, len(times))
	for i, t := range times {
		slots[i] = d.Describe(t)
	}
	return slots
}

// ShouldShowSlot решает, показывать ли слот сетки.
// Скрываются слоты внутри склеенного свободного интервала (start <= t < end) и слоты
// внутри бронирования, не являющиеся его началом (start < t < end). Encaixes не скрываются
func (d *Day) ShouldShowSlot(t int) bool {
	if _, ok := d.FitSlotAt(t); ok {
		return true
	}

	for _, span := range d.FreeSpans {
		if span.Start <= t && t < span.End {
			return false
		}
	}

	for _, b := range d.classifier.Bookings() {
		if b.StartTime < t && t < b.EndTime {
			return false
		}
	}

	return true
}

// Describe классифицирует момент времени по приоритету:
// маркер обеда > бронирование > остальные слоты обеда > начало свободного интервала > encaixe > свободный слот.
// Маркер обеда - первый слот обеда, он представляет весь перерыв
func (d *Day) Describe(t int) domain.PresentedSlot {
	slot := domain.PresentedSlot{
		Time:    timeutil.ToText(t),
		Minutes: t,
		Kind:    domain.SlotAvailable,
		Label:   timeutil.ToText(t),
	}

	if first, ok := d.Grid.FirstLunchSlot(); ok && first == t {
		return d.lunchSlot(slot)
	}

	if appt, ok := d.classifier.AppointmentAt(t); ok {
		slot.Kind = domain.SlotBooked
		slot.Label = appt.Label()
		slot.Appointment = appt
		return slot
	}

	if d.Grid.IsLunchSlot(t) {
		return d.lunchSlot(slot)
	}

	if span, ok := d.freeSpanStartingAt(t); ok {
		slot.Kind = domain.SlotFree
		slot.Label = span.Label()
		slot.FreeInterval = span
		return slot
	}

	if fit, ok := d.FitSlotAt(t); ok {
		slot.Kind = domain.SlotFit
		slot.Label = fit.Label()
		slot.Fit = fit
		return slot
	}

	return slot
}

func (d *Day) lunchSlot(slot domain.PresentedSlot) domain.PresentedSlot {
	slot.Kind = domain.SlotLunch
	if d.Schedule != nil && d.Schedule.LunchEndTime != nil {
		slot.Label = slot.Time + " - " + timeutil.ToText(*d.Schedule.LunchEndTime)
	}
	return slot
}

// IsBooked проверяет, что момент попадает внутрь бронирования
func (d *Day) IsBooked(t int) bool {
	return d.classifier.IsBooked(t)
}

// IsFreeIntervalMember проверяет, что момент попадает внутрь свободного интервала
func (d *Day) IsFreeIntervalMember(t int) bool {
	return d.classifier.IsFreeIntervalMember(t)
}

// AppointmentAt возвращает бронирование, содержащее момент
func (d *Day) AppointmentAt(t int) (*domain.Appointment, bool) {
	return d.classifier.AppointmentAt(t)
}

// FreeIntervalAt возвращает свободный интервал, содержащий момент
func (d *Day) FreeIntervalAt(t int) (*domain.Appointment, bool) {
	return d.classifier.FreeIntervalAt(t)
}

// FitSlotAt возвращает encaixe, начинающийся в момент t
func (d *Day) FitSlotAt(t int) (*domain.FitSlot, bool) {
	for i := range d.FitSlots {
		if d.FitSlots[i].Time == t {
			f := d.FitSlots[i]
			return &f, true
		}
	}
	return nil, false
}

// SlotAt возвращает слот итогового списка с указанным временем
func (d *Day) SlotAt(t int) (*domain.PresentedSlot, bool) {
	for i := range d.Slots {
		if d.Slots[i].Minutes == t {
			s := d.Slots[i]
			return &s, true
		}
	}
	return nil, false
}

func (d *Day) freeSpanStartingAt(t int) (*domain.FreeSpan, bool) {
	for i := range d.FreeSpans {
		if d.FreeSpans[i].Start == t {
			s := d.FreeSpans[i]
			return &s, true
		}
	}
	return nil, false
}
